// Package testinfra provisions real dependencies for integration tests.
//
// Tests built with the integration tag ask for a fresh database explicitly:
//
//	func TestCourseRoundTrip(t *testing.T) {
//	    database := testinfra.NewPostgres(t)
//	    repo := repositories.NewCourseRepository(database.Pool)
//	    // ...
//	}
//
// Every call starts its own PostgreSQL container with the schema migrated
// and the default departments seeded; it is torn down by t.Cleanup.
package testinfra
