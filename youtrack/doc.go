// Package youtrack is a typed client for the YouTrack REST API.
//
// The package models the server's entity catalog, including the
// discriminated unions behind the $type attribute (issue custom fields,
// project custom fields, bundle elements), and distinguishes unset, null,
// and set attributes through the Opt type so partial updates only touch the
// attributes the caller set.
//
// Client is the blocking surface; AsyncClient mirrors it with futures on a
// shared transport. Transport failures are classified against the ErrNotFound,
// ErrUnauthorized, ErrRateLimited, and ErrNetwork sentinels, and payload
// failures against the codec error types.
package youtrack
