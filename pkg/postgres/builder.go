package postgres

import "fmt"

// ConnectionBuilder assembles a keyword/value DSN for pgxpool from individual
// config fields.
func ConnectionBuilder(host string, port int, user, password, dbName, sslMode string) string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbName, sslMode,
	)
}
