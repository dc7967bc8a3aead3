package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

// Seeds the running backend with fake posts through the public API,
// exercising the same path a real client uses.
func main() {
	baseURL := flag.String("url", "http://localhost:8080", "backend base URL")
	count := flag.Int("count", 10, "number of posts to create")
	flag.Parse()

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Fatal("ADMIN_PASSWORD is not set")
	}

	gofakeit.Seed(time.Now().UnixNano())
	client := &http.Client{Timeout: 10 * time.Second}

	for i := 0; i < *count; i++ {
		payload := map[string]any{
			"title":              gofakeit.Sentence(5),
			"text":               gofakeit.Paragraph(2, 4, 12, " "),
			"include_timestamps": gofakeit.Bool(),
		}
		body, _ := json.Marshal(payload)

		req, err := http.NewRequest(http.MethodPost, *baseURL+"/posts", bytes.NewReader(body))
		if err != nil {
			log.Fatalf("build request: %v", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("x-admin-password", password)

		resp, err := client.Do(req)
		if err != nil {
			log.Fatalf("create post: %v", err)
		}
		if resp.StatusCode != http.StatusCreated {
			log.Fatalf("create post: unexpected status %s", resp.Status)
		}
		resp.Body.Close()
		fmt.Printf("created post %d/%d\n", i+1, *count)
	}
}
