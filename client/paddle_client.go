package client

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
)

const paddleRequestTimeout = 60 * time.Second

// PaddleClient calls a PaddleOCR serving endpoint over HTTP.
type PaddleClient struct {
	apiURL     string
	httpClient *http.Client
}

func NewPaddleClient(apiURL string) *PaddleClient {
	return &PaddleClient{
		apiURL:     apiURL,
		httpClient: &http.Client{Timeout: paddleRequestTimeout},
	}
}

type paddleRequest struct {
	Images []string `json:"images"`
}

type paddleResponse struct {
	Results [][]struct {
		Text       string  `json:"text"`
		Confidence float64 `json:"confidence"`
	} `json:"results"`
}

// ExtractTextAndQuality sends an image file to PaddleOCR. Paddle reports confidence in
// [0,1]; it is scaled to 0-100 to match Tesseract.
func (p *PaddleClient) ExtractTextAndQuality(filePath string) (string, float64, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", 0, fmt.Errorf("failed to read image: %w", err)
	}

	payload, err := json.Marshal(paddleRequest{
		Images: []string{base64.StdEncoding.EncodeToString(data)},
	})
	if err != nil {
		return "", 0, fmt.Errorf("failed to marshal request payload: %w", err)
	}

	resp, err := p.httpClient.Post(p.apiURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		return "", 0, fmt.Errorf("failed to call PaddleOCR API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", 0, fmt.Errorf("PaddleOCR API returned status %d: %s", resp.StatusCode, string(body))
	}

	var result paddleResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", 0, fmt.Errorf("failed to decode PaddleOCR response: %w", err)
	}

	var textBuilder strings.Builder
	var totalConf float64
	var lines int
	if len(result.Results) > 0 {
		for _, line := range result.Results[0] {
			textBuilder.WriteString(line.Text)
			textBuilder.WriteString("\n")
			totalConf += line.Confidence
			lines++
		}
	}

	if lines == 0 {
		return "", 0, fmt.Errorf("PaddleOCR extracted no text from %s", filePath)
	}

	zap.L().Debug("paddleocr extracted text",
		zap.String("file", filePath),
		zap.Int("lines", lines),
	)
	return textBuilder.String(), totalConf / float64(lines) * 100, nil
}
