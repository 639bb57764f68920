// Command admintoken prints a signed admin JWT for the /admin API.
//
//	JWT_SECRET=... admintoken -sub ops -ttl 12h
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"explorewithme/config"
	"explorewithme/internal/adapters/auth"
	"explorewithme/internal/domain"
)

func main() {
	sub := flag.String("sub", "admin", "token subject")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if !cfg.AuthEnabled() {
		fmt.Fprintln(os.Stderr, "JWT_SECRET is not set")
		os.Exit(1)
	}
	if *ttl <= 0 {
		fmt.Fprintln(os.Stderr, "-ttl must be positive")
		os.Exit(2)
	}

	token, err := auth.NewJWTIssuer(cfg.JWTSecret).Issue(*sub, []string{domain.RoleAdmin}, *ttl)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(token)
}
