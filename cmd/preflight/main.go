// cmd/preflight/main.go
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

func main() {
	warn := func(msg string) { fmt.Fprintln(os.Stderr, "⚠", msg) }
	ok := func(msg string) { fmt.Println("✔", msg) }

	addr := strings.TrimSpace(os.Getenv("ADDR"))
	db := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	allowed := strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS"))
	rpm := strings.TrimSpace(os.Getenv("RATE_LIMIT_RPM"))

	if addr == "" {
		warn("ADDR is empty; default 127.0.0.1:8080 will be used.")
	} else {
		ok("ADDR=" + addr)
	}

	if db == "" {
		warn("DATABASE_URL empty — API will use the in-memory store; alerts are lost on restart.")
	} else {
		ok("DATABASE_URL present")
	}

	if allowed == "" {
		warn("ALLOWED_ORIGINS empty — CORS allows all origins (fine for dev only).")
	} else {
		ok("ALLOWED_ORIGINS=" + allowed)
	}

	if rpm == "" {
		warn("RATE_LIMIT_RPM empty — rate limiting disabled.")
	} else if n, err := strconv.Atoi(rpm); err != nil || n <= 0 {
		warn("RATE_LIMIT_RPM is not a positive integer; rate limiting disabled.")
	} else {
		ok("RATE_LIMIT_RPM=" + rpm)
	}

	ok("preflight passed")
}
