// Package api is the HTTP surface: handlers per entity family, the router and
// the mapping from service errors to status codes.
//
// Every error body is {"message": string}. By default the legacy status
// codes are used: 401 for domain failures (unknown id, taken user name, bad
// credentials), 501 for store and validation failures and 500 for anything
// else. With strict status enabled, domain failures become 404/409/401 and
// validation failures 400. Malformed JSON is always 400.
package api
