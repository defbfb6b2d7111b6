// Package structs defines the request and response bodies of the HTTP API.
package structs
