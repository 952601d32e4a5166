package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
)

func main() {
	api := os.Getenv("API_BASE")
	if api == "" {
		api = "http://localhost:8080"
	}

	reader := bufio.NewReader(os.Stdin)
	fmt.Print("Email to notify (e.g., you@example.com): ")
	email, _ := reader.ReadString('\n')
	email = strings.TrimSpace(email)
	if email == "" {
		fmt.Println("Email is required.")
		return
	}

	fmt.Print("Threshold value (e.g., 100): ")
	rawThreshold, _ := reader.ReadString('\n')
	threshold, err := strconv.ParseFloat(strings.TrimSpace(rawThreshold), 64)
	if err != nil {
		fmt.Println("Invalid threshold.")
		return
	}

	body, _ := json.Marshal(map[string]any{"email": email, "threshold": threshold})
	resp, err := http.Post(api+"/api/alerts", "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Println("Error contacting API:", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		fmt.Println("Created! Check GET /api/alerts.")
	} else {
		fmt.Println("API returned status:", resp.Status)
	}
}
