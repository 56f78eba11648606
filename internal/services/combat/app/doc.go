// Package server composes the combat gRPC server: storage, the session
// manager, the combat service, and health reporting.
package server
