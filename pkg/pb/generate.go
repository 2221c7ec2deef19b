// Package pb holds the generated LightService messages and gRPC bindings.
package pb

//go:generate sh -c "cd ../.. && buf generate"
