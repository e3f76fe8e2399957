// Command chat-demo sends one message to a running rahalah server and prints
// the reply. Useful for poking the router without a frontend:
//
//	go run scripts/chat-demo/main.go -message "flight from dammam to dubai tomorrow"
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
)

func main() {
	var (
		baseURL   = flag.String("url", "http://localhost:8080", "server base URL")
		message   = flag.String("message", "hello", "message to send")
		sessionID = flag.String("session", "", "session id to continue (empty starts a new one)")
	)
	flag.Parse()

	body, _ := json.Marshal(map[string]string{
		"message":    *message,
		"session_id": *sessionID,
	})

	resp, err := http.Post(*baseURL+"/api/v1/chat", "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Fprintln(os.Stderr, "request failed:", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	var out bytes.Buffer
	dec := json.NewDecoder(resp.Body)
	var payload any
	if err := dec.Decode(&payload); err != nil {
		fmt.Fprintln(os.Stderr, "decode failed:", err)
		os.Exit(1)
	}
	enc := json.NewEncoder(&out)
	enc.SetIndent("", "  ")
	_ = enc.Encode(payload)

	fmt.Printf("HTTP %d\n%s", resp.StatusCode, out.String())
}
