package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"authflow/internal/facades"
	"authflow/internal/logger"
	"authflow/internal/state"
	"authflow/internal/transport"
)

func main() {
	configPath := parseFlags()

	loginURL, email, password, logLevel, timeoutSecond, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(loginURL, email, password, logLevel, timeoutSecond); err != nil {
		log.Fatalf("login failed: %v", err)
	}
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the login
// endpoint, credentials, log level, and wait timeout.
func parseConfig(path string) (
	loginURL, email, password, logLevel string,
	timeoutSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	loginURL = getEnv("LOGIN_URL", "http://localhost:8080/login")
	email = getEnv("LOGIN_EMAIL", "")
	password = getEnv("LOGIN_PASSWORD", "")
	logLevel = getEnv("APP_LOG_LEVEL", "info")
	if timeoutSecond, err = strconv.Atoi(getEnv("LOGIN_TIMEOUT_SECOND", "30")); err != nil {
		return
	}

	return
}

// run wires the transport client, the login facade, and the state holder,
// submits once, and waits for the outcome.
func run(loginURL, email, password, logLevel string, timeoutSecond int) error {
	log, err := logger.New(logLevel)
	if err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer log.Sync()

	timeout := time.Duration(timeoutSecond) * time.Second

	client := transport.New(&http.Client{Timeout: timeout}, log)
	facade := facades.NewLoginHTTPFacade(client, loginURL, log)
	loginState := state.NewLoginState(facade, log)

	resolved := make(chan state.Snapshot, 1)
	loginState.Subscribe(func(snap state.Snapshot) {
		select {
		case resolved <- snap:
		default:
		}
	})

	loginState.SetEmail(email)
	loginState.SetPassword(password)
	loginState.Submit()

	select {
	case snap := <-resolved:
		if snap.LastError != "" {
			return errors.New(snap.LastError)
		}
		fmt.Printf("token: %s\n", snap.LastResponse.Token)
		return nil
	case <-time.After(timeout + time.Second):
		return errors.New("timed out waiting for login to resolve")
	}
}
