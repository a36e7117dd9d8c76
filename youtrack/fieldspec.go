package youtrack

// Field projections requested from the server. YouTrack returns only the
// attributes named in the fields parameter, so every endpoint asks for the
// full set its entity struct can hold.
const (
	userFields = "$type,id,ringId,login,name,email"

	userGroupFields = "$type,id,name,ringId"

	projectFields = "$type,id,name,shortName"

	tagFields = "$type,id,name"

	customFieldFields = "$type,name,fieldType($type,id)"

	projectCustomFieldFields = "$type,id,canBeEmpty,emptyFieldText,field(" + customFieldFields + ")"

	issueCustomFieldFields = "$type,id,name," +
		"projectCustomField(" + projectCustomFieldFields + ")," +
		"value($type,id,name,isResolved,text,markdownText,minutes,presentation,ringId,login,email)"

	issueFields = "$type,id,idReadable,created,updated,resolved," +
		"summary,description,wikifiedDescription,commentsCount," +
		"project(" + projectFields + ")," +
		"reporter(" + userFields + ")," +
		"updater(" + userFields + ")," +
		"tags(" + tagFields + ")," +
		"customFields(" + issueCustomFieldFields + ")"

	attachmentFields = "$type,id,name,created,updated,mimeType,url," +
		"author(" + userFields + ")"

	issueCommentFields = "$type,id,text,textPreview,created,updated,deleted," +
		"author(" + userFields + ")," +
		"attachments(" + attachmentFields + ")"

	workItemTypeFields = "$type,id,name"

	issueWorkItemFields = "$type,id,text,textPreview,date,created,updated," +
		"author(" + userFields + ")," +
		"creator(" + userFields + ")," +
		"duration($type,id,minutes,presentation)," +
		"type(" + workItemTypeFields + ")"

	issueLinkTypeFields = "$type,id,name,localizedName,sourceToTarget,localizedSourceToTarget," +
		"targetToSource,localizedTargetToSource,directed,aggregation,readOnly"

	issueLinkFields = "id,direction," +
		"linkType(" + issueLinkTypeFields + ")," +
		"issues(" + issueFields + ")," +
		"trimmedIssues(" + issueFields + ")"

	agileFields = "$type,id,name," +
		"owner(" + userFields + ")," +
		"visibleFor(" + userGroupFields + ")," +
		"projects(" + projectFields + ")," +
		"sprints($type,id,name)," +
		"currentSprint($type,id,name)"

	sprintFields = "$type,id,name,goal,start,finish,archived,isDefault,unresolvedIssuesCount," +
		"agile($type,id,name)," +
		"previousSprint($type,id,name)," +
		"issues(" + issueFields + ")"
)
