package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"github.com/akolanti/RagAPI/internal/api"
)

type Config struct {
	ServerAddr string
	Model      string
}

type apiClient struct {
	baseURL string
	http    *http.Client
}

func main() {
	config := parseFlags()

	if err := run(config); err != nil {
		log.Fatal(err)
	}
}

func parseFlags() Config {
	var config Config

	flag.StringVar(&config.ServerAddr, "addr", envOr("RAG_API_ADDR", "http://localhost:3000"), "Base URL of the RAG API server")
	flag.StringVar(&config.Model, "model", "", "LLM model override for chat requests")
	flag.Parse()

	config.ServerAddr = strings.TrimRight(config.ServerAddr, "/")
	return config
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getSpinner(description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(color.CyanString(description)),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetWidth(20),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetRenderBlankState(true),
	)
}

func getProgressBar(total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription(color.BlueString(description)),
		progressbar.OptionSetItsString("files"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetRenderBlankState(true),
	)
}

func run(config Config) error {
	client := &apiClient{
		baseURL: config.ServerAddr,
		//model pulls and long generations can block for minutes
		http: &http.Client{Timeout: 15 * time.Minute},
	}

	if err := client.ping(); err != nil {
		return fmt.Errorf("server at %s is not reachable: %v", config.ServerAddr, err)
	}

	color.Cyan("\nChat with your documents (type /help for commands, /quit to exit)")

	scanner := bufio.NewScanner(os.Stdin)
	userPrompt := color.New(color.FgGreen).PrintfFunc()
	assistantPrompt := color.New(color.FgCyan).PrintfFunc()

	sessionID := ""

	for {
		userPrompt("\nYou: ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.ToLower(line) == "exit" || line == "/quit" {
			break
		}

		if strings.HasPrefix(line, "/") {
			fields := strings.Fields(line)
			switch fields[0] {
			case "/help":
				printHelp()
			case "/upload":
				if len(fields) < 2 {
					color.Red("Usage: /upload <file> [file...] [chunk_size] [chunk_overlap]")
					continue
				}
				client.upload(fields[1:])
			case "/search":
				if len(fields) < 2 {
					color.Red("Usage: /search <query>")
					continue
				}
				client.search(strings.Join(fields[1:], " "))
			case "/docs":
				client.listDocuments()
			case "/stats":
				client.stats()
			case "/clear":
				client.clearDocuments()
			case "/models":
				client.listModels()
			case "/pull":
				if len(fields) != 2 {
					color.Red("Usage: /pull <model>")
					continue
				}
				client.pullModel(fields[1])
			case "/new":
				sessionID = ""
				color.Blue("Started a new conversation")
			default:
				color.Red("Unknown command %s, type /help", fields[0])
			}
			continue
		}

		// Everything else is a question
		spinner := getSpinner(" Thinking...")
		var resp api.ChatResponse
		err := client.postJSON("/chat", api.ChatRequest{Message: line, SessionID: sessionID, Model: config.Model}, &resp)
		spinner.Finish()
		fmt.Print("\r")

		if err != nil {
			color.Red("Error: %v\n", err)
			continue
		}
		sessionID = resp.SessionID

		fmt.Print("\n")
		assistantPrompt("Assistant: %s\n", resp.Answer)
		if resp.Cached {
			color.Blue("(answered from cache)")
		}
		printSources(resp.Sources)
	}

	return nil
}

func printHelp() {
	fmt.Println(`Commands:
  /upload <file> [file...] [chunk_size] [chunk_overlap]   ingest documents
  /search <query>                                          similarity search
  /docs                                                    list ingested documents
  /stats                                                   collection statistics
  /clear                                                   wipe the knowledge base
  /models                                                  list available models
  /pull <model>                                            pull a model
  /new                                                     start a new conversation
  /quit                                                    exit

Anything else is sent as a question.`)
}

func printSources(sources []api.SourceChunk) {
	for i, source := range sources {
		distance := ""
		if source.Distance != nil {
			distance = fmt.Sprintf(", distance %.3f", *source.Distance)
		}
		color.Yellow("  [%d] %s (chunk %d/%d%s)", i+1, source.Filename, source.ChunkIndex+1, source.TotalChunks, distance)
	}
}

func (c *apiClient) ping() error {
	resp, err := c.http.Get(c.baseURL + "/health")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned %s", resp.Status)
	}
	return nil
}

// upload sends files as one multipart batch. Trailing numeric arguments are
// treated as chunk_size and chunk_overlap overrides.
func (c *apiClient) upload(args []string) {
	var paths []string
	var numbers []string
	for _, arg := range args {
		if _, err := strconv.Atoi(arg); err == nil {
			numbers = append(numbers, arg)
			continue
		}
		paths = append(paths, arg)
	}
	if len(paths) == 0 {
		color.Red("No files given")
		return
	}
	if len(numbers) > 2 {
		color.Red("At most two numeric arguments: chunk_size and chunk_overlap")
		return
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if len(numbers) > 0 {
		writer.WriteField("chunk_size", numbers[0])
	}
	if len(numbers) > 1 {
		writer.WriteField("chunk_overlap", numbers[1])
	}

	bar := getProgressBar(len(paths), " Reading files...")
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			color.Red("\nCould not read %s: %v", path, err)
			return
		}
		part, err := writer.CreateFormFile("documents", filepath.Base(path))
		if err != nil {
			color.Red("\nCould not attach %s: %v", path, err)
			return
		}
		if _, err := part.Write(data); err != nil {
			color.Red("\nCould not attach %s: %v", path, err)
			return
		}
		bar.Add(1)
	}
	if err := writer.Close(); err != nil {
		color.Red("\nCould not finish upload body: %v", err)
		return
	}

	spinner := getSpinner(" Ingesting documents...")
	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/documents", body)
	if err != nil {
		spinner.Finish()
		color.Red("\n%v", err)
		return
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var resp api.UploadResponse
	err = c.do(req, &resp)
	spinner.Finish()
	fmt.Print("\r")
	if err != nil {
		color.Red("Upload failed: %v", err)
		return
	}

	for _, report := range resp.Reports {
		if report.Error != "" {
			color.Red("✗ %s: %s", report.Filename, report.Error)
			continue
		}
		color.Green("✓ %s: %d chunks, %d tokens", report.Filename, report.Chunks, report.Tokens)
	}
	color.Green("Stored %d chunks\n", resp.TotalChunks)
}

func (c *apiClient) search(query string) {
	spinner := getSpinner(" Searching documents...")
	var resp api.SearchResponse
	err := c.postJSON("/search", api.SearchRequest{Query: query}, &resp)
	spinner.Finish()
	fmt.Print("\r")

	if err != nil {
		color.Red("Search failed: %v", err)
		return
	}
	if len(resp.Results) == 0 {
		color.Yellow("No matches")
		return
	}
	for i, result := range resp.Results {
		distance := ""
		if result.Distance != nil {
			distance = fmt.Sprintf(" (distance %.3f)", *result.Distance)
		}
		color.Yellow("[%d] %s chunk %d/%d%s", i+1, result.Filename, result.ChunkIndex+1, result.TotalChunks, distance)
		fmt.Println(snippet(result.Content))
	}
}

func snippet(content string) string {
	content = strings.ReplaceAll(content, "\n", " ")
	if len(content) > 240 {
		return content[:240] + "..."
	}
	return content
}

func (c *apiClient) listDocuments() {
	var resp api.DocumentListResponse
	if err := c.getJSON("/documents", &resp); err != nil {
		color.Red("Could not list documents: %v", err)
		return
	}
	if len(resp.Documents) == 0 {
		color.Yellow("The knowledge base is empty")
		return
	}
	for _, doc := range resp.Documents {
		fmt.Printf("%-40s %5d chunks %8d tokens  %s\n", doc.Filename, doc.ChunkCount, doc.Tokens, doc.IngestedAt.Format(time.RFC3339))
	}
}

func (c *apiClient) stats() {
	var resp api.StatsResponse
	if err := c.getJSON("/documents/stats", &resp); err != nil {
		color.Red("Could not read stats: %v", err)
		return
	}
	fmt.Printf("collection %q holds %d chunks\n", resp.CollectionName, resp.DocumentCount)
}

func (c *apiClient) clearDocuments() {
	req, err := http.NewRequest(http.MethodDelete, c.baseURL+"/documents", nil)
	if err != nil {
		color.Red("%v", err)
		return
	}
	var resp api.ClearResponse
	if err := c.do(req, &resp); err != nil {
		color.Red("Clear failed: %v", err)
		return
	}
	color.Green("Knowledge base cleared")
}

func (c *apiClient) listModels() {
	var resp api.ModelsResponse
	if err := c.getJSON("/models", &resp); err != nil {
		color.Red("Could not list models: %v", err)
		return
	}
	for _, model := range resp.Models {
		fmt.Println(model)
	}
}

func (c *apiClient) pullModel(model string) {
	spinner := getSpinner(" Pulling " + model + "...")
	var resp api.PullModelResponse
	err := c.postJSON("/models/pull", api.PullModelRequest{Name: model}, &resp)
	spinner.Finish()
	fmt.Print("\r")

	if err != nil {
		color.Red("Pull failed: %v", err)
		return
	}
	color.Green("✓ %s %s", resp.Model, resp.Status)
}

func (c *apiClient) postJSON(path string, payload any, out any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *apiClient) getJSON(path string, out any) error {
	req, err := http.NewRequest(http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *apiClient) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr api.ErrorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error != nil {
			return fmt.Errorf("%s (%d)", apiErr.Error.Message, apiErr.Error.Code)
		}
		return fmt.Errorf("server returned %s", resp.Status)
	}

	if out == nil {
		_, err := io.Copy(io.Discard, resp.Body)
		return err
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
