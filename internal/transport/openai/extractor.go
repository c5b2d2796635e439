package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
	"go.uber.org/zap"

	"github.com/storelens/shopdex/internal/domain"
	"github.com/storelens/shopdex/internal/domain/criteria"
	"github.com/storelens/shopdex/internal/metrics"
)

// Extraction task names, used as schema names and metric labels.
const (
	taskCategories   = "extract_categories"
	taskBrands       = "extract_intended_brands"
	taskPriceSorting = "extract_price_sorting"
	taskMapAttrs     = "map_attributes"
)

// Extractor turns free-text queries into structured filter intent via
// chat completions with a JSON-schema response format.
type Extractor struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

// ExtractorConfig holds the LLM provider settings.
type ExtractorConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Logger  *zap.Logger
}

// NewExtractor creates an OpenAI-compatible extraction client.
func NewExtractor(cfg *ExtractorConfig) *Extractor {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return &Extractor{
		client: openai.NewClientWithConfig(clientCfg),
		model:  cfg.Model,
		logger: cfg.Logger,
	}
}

// --- wire types ---

type categoriesWire struct {
	Categories        []string `json:"categories"`
	ExcludeCategories []string `json:"excludeCategories"`
}

type brandsWire struct {
	Brands        []string `json:"brands"`
	ExcludeBrands []string `json:"excludeBrands"`
}

type priceSortingWire struct {
	Price *struct {
		Amount    float64  `json:"amount"`
		Operator  string   `json:"operator"`
		MaxAmount *float64 `json:"maxAmount"`
	} `json:"price"`
	Sorting *struct {
		Field string `json:"field"`
		Order string `json:"order"`
	} `json:"sorting"`
}

type mappingWire struct {
	Mappings []struct {
		AttributeName  string   `json:"attributeName"`
		SelectedValues []string `json:"selectedValues"`
		Confidence     string   `json:"confidence"`
	} `json:"mappings"`
	Reasoning string `json:"reasoning"`
}

// ExtractCategories returns the raw include and exclude category lists the
// model produced. Validation against the catalog happens in the workflow.
func (e *Extractor) ExtractCategories(ctx context.Context, query string, available []string) ([]string, []string, error) {
	var out categoriesWire
	err := e.complete(ctx, taskCategories, categoriesPrompt(query, available), categoriesSchema, &out)
	if err != nil {
		return nil, nil, err
	}
	return out.Categories, out.ExcludeCategories, nil
}

// ExtractIntendedBrands returns the brands the user asked for, unrestricted
// by the catalog.
func (e *Extractor) ExtractIntendedBrands(ctx context.Context, query string) (criteria.IntendedBrands, error) {
	var out brandsWire
	err := e.complete(ctx, taskBrands, brandsPrompt(query), brandsSchema, &out)
	if err != nil {
		return criteria.IntendedBrands{}, err
	}
	return criteria.IntendedBrands{
		Brands:        out.Brands,
		ExcludeBrands: out.ExcludeBrands,
	}, nil
}

// ExtractPriceSorting returns the price condition and sorting preference, or
// nils when the query expresses neither.
func (e *Extractor) ExtractPriceSorting(ctx context.Context, query string) (*criteria.PriceCondition, *criteria.Sorting, error) {
	var out priceSortingWire
	err := e.complete(ctx, taskPriceSorting, priceSortingPrompt(query), priceSortingSchema, &out)
	if err != nil {
		return nil, nil, err
	}

	var price *criteria.PriceCondition
	if out.Price != nil {
		price = &criteria.PriceCondition{
			Amount:    out.Price.Amount,
			Operator:  criteria.PriceOperator(out.Price.Operator),
			MaxAmount: out.Price.MaxAmount,
		}
	}

	var sorting *criteria.Sorting
	if out.Sorting != nil {
		sorting = &criteria.Sorting{
			Field: out.Sorting.Field,
			Order: criteria.SortOrder(out.Sorting.Order),
		}
	}

	return price, sorting, nil
}

// MapAttributes asks the model to pick attribute values matching the query
// from the discovered vocabulary.
func (e *Extractor) MapAttributes(ctx context.Context, query string, attrs []criteria.AttributeMap) (criteria.AttributeMapping, error) {
	var out mappingWire
	err := e.complete(ctx, taskMapAttrs, attributeMappingPrompt(query, attrs), attributeMappingSchema, &out)
	if err != nil {
		return criteria.AttributeMapping{}, err
	}

	result := criteria.AttributeMapping{Reasoning: out.Reasoning}
	for _, m := range out.Mappings {
		result.Mappings = append(result.Mappings, criteria.ValueMapping{
			AttributeName:  m.AttributeName,
			SelectedValues: m.SelectedValues,
			Confidence:     criteria.Confidence(m.Confidence),
		})
	}
	return result, nil
}

// complete runs one structured chat completion and unmarshals the answer.
// All failures are wrapped with domain.ErrExtractionFailed.
func (e *Extractor) complete(ctx context.Context, task, prompt string, schema jsonschema.Definition, out any) error {
	start := time.Now()

	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONSchema,
			JSONSchema: &openai.ChatCompletionResponseFormatJSONSchema{
				Name:   task,
				Schema: &schema,
			},
		},
	})

	duration := time.Since(start)

	if err != nil {
		metrics.ExtractionRequestsTotal.WithLabelValues(task, "error").Inc()
		return parseExtractionError(task, err)
	}

	if len(resp.Choices) == 0 {
		metrics.ExtractionRequestsTotal.WithLabelValues(task, "error").Inc()
		return fmt.Errorf("%s: empty completion response: %w", task, domain.ErrExtractionFailed)
	}

	content := resp.Choices[0].Message.Content
	if err := json.Unmarshal([]byte(content), out); err != nil {
		metrics.ExtractionRequestsTotal.WithLabelValues(task, "error").Inc()
		e.logger.Warn("Malformed extraction output",
			zap.String("task", task), zap.String("content", content), zap.Error(err))
		return fmt.Errorf("%s: unmarshal completion: %w: %w", task, domain.ErrExtractionFailed, err)
	}

	metrics.ExtractionRequestsTotal.WithLabelValues(task, "success").Inc()
	metrics.ExtractionRequestDuration.WithLabelValues(task).Observe(duration.Seconds())

	return nil
}

// parseExtractionError wraps API errors with domain.ErrExtractionFailed for
// the workflow's fail-open handling.
func parseExtractionError(task string, err error) error {
	wrap := domain.ErrExtractionFailed

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%s: LLM API error %d: %s: %w",
			task, apiErr.HTTPStatusCode, apiErr.Message, wrap)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Errorf("%s: LLM API error %d: %s: %w",
			task, reqErr.HTTPStatusCode, string(reqErr.Body), wrap)
	}

	return fmt.Errorf("%s: LLM request failed: %w: %w", task, wrap, err)
}
