// Package session models the portal's authenticated identity: the access token, the
// user it belongs to and that user's role.
//
// Key rules:
//   - A Session is either cleared (zero value) or fully populated
//   - IsAuthenticated is derived from the token, never stored separately
//   - Only clients and admins exist; admins alone may change order status
package session
