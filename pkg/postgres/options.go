package postgres

import "time"

type Option func(*Postgres)

// MaxPoolSize caps pgxpool's MaxConns.
func MaxPoolSize(n int) Option {
	return func(p *Postgres) {
		p.maxPoolSize = n
	}
}

// ConnAttempts bounds how many times New retries the initial connection.
func ConnAttempts(n int) Option {
	return func(p *Postgres) {
		p.connAttempts = n
	}
}

// ConnTimeout is the pause between connection attempts.
func ConnTimeout(d time.Duration) Option {
	return func(p *Postgres) {
		p.connTimeout = d
	}
}
