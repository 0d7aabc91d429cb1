// Package gemini implements domain.Estimator on the Gemini generateContent
// REST API. Responses are expected to be JSON, possibly wrapped in markdown
// code fences, which are stripped before parsing; anything that still fails
// to parse is reported as an estimator failure.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/familyplate/backend/internal/domain"
)

// Client calls the Gemini generateContent endpoint.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	debug      bool
}

// NewClient creates a Gemini client. baseURL is the API root, e.g.
// "https://generativelanguage.googleapis.com/v1beta".
func NewClient(apiKey, baseURL, model string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetDebug enables logging of raw model output
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// generate sends one prompt and returns the first candidate's text.
func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("%w: marshal request: %v", domain.ErrEstimatorFailure, err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payload))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrEstimatorFailure, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrEstimatorFailure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", domain.ErrEstimatorFailure, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d: %s", domain.ErrEstimatorFailure, resp.StatusCode, string(body))
	}

	var response generateResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("%w: unmarshal response: %v", domain.ErrEstimatorFailure, err)
	}

	if len(response.Candidates) == 0 || len(response.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty response", domain.ErrEstimatorFailure)
	}

	text := response.Candidates[0].Content.Parts[0].Text
	if c.debug {
		log.Printf("[Gemini] raw output: %s", text)
	}
	return text, nil
}

// cleanJSON strips markdown code fences and trims the text to its outermost
// JSON object or array boundaries.
func cleanJSON(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	s = strings.TrimSpace(s)

	objStart := strings.Index(s, "{")
	arrStart := strings.Index(s, "[")

	if arrStart != -1 && (objStart == -1 || arrStart < objStart) {
		if end := strings.LastIndex(s, "]"); end > arrStart {
			return s[arrStart : end+1]
		}
	}
	if objStart != -1 {
		if end := strings.LastIndex(s, "}"); end > objStart {
			return s[objStart : end+1]
		}
	}
	return s
}

// EstimateNutrients asks for the full nutrient profile of 100g of a food.
func (c *Client) EstimateNutrients(ctx context.Context, foodName string) (map[string]float64, error) {
	prompt := fmt.Sprintf(`Estimate the nutrient values for 100g of RAW "%s".
Return a single JSON object with these exact keys (values in numbers):
- energy_kcal
- protein (g)
- fat_total (g)
- carbohydrates (g)
- fiber (g)
- sodium (mg)
- calcium (mg)
- iron (mg)
- potassium (mg)
- vit_a (mcg)
- vit_c (mg)
- vit_d (mcg)
- vit_b12 (mcg)

If a value is negligible, use 0. Return ONLY JSON.`, foodName)

	text, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var amounts map[string]float64
	if err := json.Unmarshal([]byte(cleanJSON(text)), &amounts); err != nil {
		return nil, fmt.Errorf("%w: parse nutrient estimate: %v", domain.ErrEstimatorFailure, err)
	}
	return amounts, nil
}

// EstimateSingleNutrient asks for one nutrient's content in 100g of a food,
// used by the catalog backfill sweep.
func (c *Client) EstimateSingleNutrient(ctx context.Context, foodName, nutrientName string) (float64, error) {
	prompt := fmt.Sprintf(`Estimate %s content for 100g of RAW "%s". Return ONLY a JSON object: {"amount": <number>, "unit": "<unit>"}. If negligible, return {"amount": 0}.`,
		nutrientName, foodName)

	text, err := c.generate(ctx, prompt)
	if err != nil {
		return 0, err
	}

	var result struct {
		Amount float64 `json:"amount"`
		Unit   string  `json:"unit"`
	}
	if err := json.Unmarshal([]byte(cleanJSON(text)), &result); err != nil {
		return 0, fmt.Errorf("%w: parse single nutrient estimate: %v", domain.ErrEstimatorFailure, err)
	}
	return result.Amount, nil
}

// ParseMeal splits a free-text meal description into food items.
func (c *Client) ParseMeal(ctx context.Context, text string) ([]domain.ParsedMealItem, error) {
	prompt := fmt.Sprintf(`You are a nutrition assistant. Parse the following meal description into a JSON list of food items.
For each item:
1. Identify the food name (be specific, e.g. "cooked rice" instead of "rice").
2. Estimate the quantity in grams. If the user specifies units like "cup" or "bowl", convert to grams using standard density.
3. Provide a confidence level ("high", "medium", "low").

Return ONLY valid JSON array. No markdown formatting.

Example input: "I ate a large bowl of oatmeal and a banana"
Example output:
[
  { "food_name": "Oatmeal, cooked", "quantity_g": 350, "confidence": "medium" },
  { "food_name": "Banana, raw", "quantity_g": 118, "confidence": "high" }
]

Description: "%s"`, text)

	raw, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var items []domain.ParsedMealItem
	if err := json.Unmarshal([]byte(cleanJSON(raw)), &items); err != nil {
		return nil, fmt.Errorf("%w: parse meal response: %v", domain.ErrEstimatorFailure, err)
	}
	return items, nil
}

// maxMatchContext caps how many existing food names are sent as context, to
// keep the prompt within token limits.
const maxMatchContext = 300

// MatchOrCreate asks whether query is a synonym of an existing food or a
// new food needing nutrient estimates.
func (c *Client) MatchOrCreate(ctx context.Context, query string, existing []string) (*domain.FoodMatchDecision, error) {
	if len(existing) > maxMatchContext {
		existing = existing[:maxMatchContext]
	}
	contextList, err := json.Marshal(existing)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEstimatorFailure, err)
	}

	prompt := fmt.Sprintf(`User is searching for food ingredient: "%s".
Here is a list of existing foods in our database:
%s

Task:
1. Check if "%s" is a synonym or close match for any existing food (e.g. "ground nut" == "Peanuts").
2. If MATCH found, return JSON: { "action": "match", "existing_food_name": "Exact Name From List" }
3. If NO match, estimate nutrients for 100g to create a new entry. Return JSON: { "action": "create", "new_food_name": "Capitalized Name", "nutrients": { "energy_kcal": <number>, "protein": <number>, "fat_total": <number>, "carbohydrates": <number>, "fiber": <number> } }

Return ONLY JSON.`, query, contextList, query)

	raw, err := c.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var decision domain.FoodMatchDecision
	if err := json.Unmarshal([]byte(cleanJSON(raw)), &decision); err != nil {
		return nil, fmt.Errorf("%w: parse match decision: %v", domain.ErrEstimatorFailure, err)
	}
	return &decision, nil
}
