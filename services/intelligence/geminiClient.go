package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"opsdeck/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiModel = "models/gemini-1.5-flash"

// GeminiService implements Service against the Gemini API. Every call pins a
// JSON response schema so the reply parses straight into its model type.
type GeminiService struct {
	client *genai.Client
}

func NewGeminiService(ctx context.Context, apiKey string) (*GeminiService, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}
	return &GeminiService{client: client}, nil
}

func (s *GeminiService) ExtractBillDetails(ctx context.Context, image []byte, mimeType string) (*models.BillDetails, error) {
	model := s.jsonModel(&genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"totalAmount":   {Type: genai.TypeNumber, Description: "Total amount due on the bill."},
			"billingPeriod": {Type: genai.TypeString, Description: "The billing period, e.g., 'October 2023' or '10/01/2023 - 10/31/2023'."},
			"totalUsage":    {Type: genai.TypeString, Description: "Total usage with units, e.g., '850 kWh' or '75 CCF'."},
		},
		Required: []string{"totalAmount", "billingPeriod", "totalUsage"},
	})

	prompt := "Analyze this utility bill. Extract the total amount due, the billing period (start and end dates or month), and the total usage (e.g., in kWh). Return the data in the specified JSON format."
	resp, err := model.GenerateContent(ctx,
		genai.Text(prompt),
		genai.ImageData(strings.TrimPrefix(mimeType, "image/"), image),
	)
	if err != nil {
		return nil, fmt.Errorf("analyze bill image: %w", err)
	}

	var details models.BillDetails
	if err := decodeResponse(resp, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

func (s *GeminiService) DetectUsageAnomaly(ctx context.Context, historical []float64, current float64) (*models.AnomalyReport, error) {
	model := s.jsonModel(&genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"isAnomaly": {Type: genai.TypeBoolean, Description: "True if the current usage is considered an anomaly."},
			"reasoning": {Type: genai.TypeString, Description: "A brief explanation for why it is or is not an anomaly."},
		},
		Required: []string{"isAnomaly", "reasoning"},
	})

	series := make([]string, len(historical))
	for i, v := range historical {
		series[i] = fmt.Sprintf("%g", v)
	}
	prompt := fmt.Sprintf(
		"A commercial tenant's historical monthly utility usage is: [%s].\nThe most recent month's usage was %g.\nBased on the historical data, is the current usage an anomaly (e.g., a potential leak or equipment failure)?\nPlease respond in the specified JSON format.",
		strings.Join(series, ", "), current,
	)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("detect usage anomaly: %w", err)
	}

	var report models.AnomalyReport
	if err := decodeResponse(resp, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (s *GeminiService) GenerateReportContent(ctx context.Context, statsContext string) (*models.ReportContent, error) {
	model := s.jsonModel(&genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title": {Type: genai.TypeString, Description: "Title of the presentation."},
			"summaryPoints": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "Three bullet points summarizing the status.",
			},
		},
		Required: []string{"title", "summaryPoints"},
	})

	prompt := fmt.Sprintf(
		"You are a business analyst for a property management platform.\nBased on the following dashboard statistics:\n%s\nPlease generate:\n1. A professional and engaging title for a Monthly Status Report presentation.\n2. Three concise, insightful executive summary bullet points highlighting the financial status, operations, or actions needed.\n\nReturn the response in JSON.",
		statsContext,
	)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return FallbackReportContent(), nil
	}

	var content models.ReportContent
	if err := decodeResponse(resp, &content); err != nil {
		return FallbackReportContent(), nil
	}
	return &content, nil
}

func (s *GeminiService) jsonModel(schema *genai.Schema) *genai.GenerativeModel {
	model := s.client.GenerativeModel(geminiModel)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = schema
	return model
}

func decodeResponse(resp *genai.GenerateContentResponse, out interface{}) error {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return fmt.Errorf("empty response from model")
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	if err := json.Unmarshal([]byte(strings.TrimSpace(sb.String())), out); err != nil {
		return fmt.Errorf("parse model response: %w", err)
	}
	return nil
}
