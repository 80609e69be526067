// Package proto holds the admin wire schema (admin.proto), the code
// generated from it, and the mapping between the wire records and
// internal/models.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative admin.proto
