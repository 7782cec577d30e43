// Package ports holds the interfaces that join the layers. Handlers call
// ListService, the application service calls ListStore, and the readiness
// probe calls HealthRegistry.
package ports
