// Package response renders the platform JSON envelope.
//
// Every endpoint answers with the same shape so API clients can branch on
// success without inspecting status codes:
//
//	{"success": true, "status": 200, "message": "...", "data": {...}}
//	{"success": false, "status": 401, "error": "Invalid token"}
package response
