package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// One-shot exporter: reads the running API and saves project data as CSV
// tables. With -seed it first creates a handful of sample projects and notes.

type project struct {
	ID          int64   `json:"id"`
	ProjectID   string  `json:"project_id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
	Priority    *string `json:"priority"`
	Domain      *string `json:"domain"`
	NextSteps   *string `json:"next_steps"`
	Deadline    *string `json:"deadline"`
	ProjectType *string `json:"project_type"`
	Tooling     *string `json:"tooling"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type note struct {
	ID        int64  `json:"id"`
	ProjectID int64  `json:"project_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func (c *client) do(method, path string, body, out any) error {
	reqBody := &bytes.Buffer{}
	if body != nil {
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	req.Header.Set("X-API-Key", c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func seed(c *client) error {
	payloads := []map[string]any{
		{"project_id": "P-101", "name": "AI assistant", "status": "Planned", "priority": "High"},
		{"project_id": "P-102", "name": "Website redesign", "status": "Active", "domain": "UI/UX"},
		{"project_id": "P-103", "name": "Database optimization", "status": "Planned", "project_type": "Maintenance"},
	}

	for _, payload := range payloads {
		var p project
		if err := c.do(http.MethodPost, "/projects/", payload, &p); err != nil {
			return err
		}
		for i := 1; i <= 2; i++ {
			body := map[string]any{"content": fmt.Sprintf("Note %d for %s", i, p.ProjectID)}
			path := fmt.Sprintf("/projects/%d/notes/", p.ID)
			if err := c.do(http.MethodPost, path, body, nil); err != nil {
				return err
			}
		}
	}
	return nil
}

func saveTable(path string, header []string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func main() {
	baseURL := flag.String("base-url", "http://localhost:8080", "API base URL")
	apiKey := flag.String("api-key", os.Getenv("API_KEY"), "pre-shared API key")
	outDir := flag.String("out", "data_tables", "output directory for CSV files")
	doSeed := flag.Bool("seed", false, "create sample projects and notes first")
	flag.Parse()

	if *apiKey == "" {
		log.Fatal("api key required (flag -api-key or env API_KEY)")
	}

	c := &client{baseURL: *baseURL, apiKey: *apiKey, http: &http.Client{Timeout: 30 * time.Second}}

	if *doSeed {
		if err := seed(c); err != nil {
			log.Fatalf("seeding failed: %v", err)
		}
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("failed to create output dir: %v", err)
	}

	var projects []project
	if err := c.do(http.MethodGet, "/projects/", nil, &projects); err != nil {
		log.Fatalf("failed to list projects: %v", err)
	}

	projectRows := make([][]string, 0, len(projects))
	var noteRows [][]string
	for _, p := range projects {
		projectRows = append(projectRows, []string{
			strconv.FormatInt(p.ID, 10), p.ProjectID, p.Name, deref(p.Description),
			p.Status, deref(p.Priority), deref(p.Domain), deref(p.NextSteps),
			deref(p.Deadline), deref(p.ProjectType), deref(p.Tooling),
			p.CreatedAt, p.UpdatedAt,
		})

		var notes []note
		path := fmt.Sprintf("/projects/%d/notes/", p.ID)
		if err := c.do(http.MethodGet, path, nil, &notes); err != nil {
			log.Fatalf("failed to list notes for project %d: %v", p.ID, err)
		}
		for _, n := range notes {
			noteRows = append(noteRows, []string{
				strconv.FormatInt(n.ID, 10), strconv.FormatInt(n.ProjectID, 10),
				n.Content, n.CreatedAt, n.UpdatedAt,
			})
		}
	}

	projectHeader := []string{"id", "project_id", "name", "description", "status", "priority", "domain", "next_steps", "deadline", "project_type", "tooling", "created_at", "updated_at"}
	if err := saveTable(filepath.Join(*outDir, "projects.csv"), projectHeader, projectRows); err != nil {
		log.Fatalf("failed to write projects.csv: %v", err)
	}

	noteHeader := []string{"id", "project_id", "content", "created_at", "updated_at"}
	if err := saveTable(filepath.Join(*outDir, "notes.csv"), noteHeader, noteRows); err != nil {
		log.Fatalf("failed to write notes.csv: %v", err)
	}

	log.Printf("exported %d projects and %d notes to %s", len(projectRows), len(noteRows), *outDir)
}
