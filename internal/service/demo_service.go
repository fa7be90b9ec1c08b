package service

import (
	"context"

	"github.com/antonrybalko/record-demo-go/internal/domain"
	"github.com/antonrybalko/record-demo-go/internal/processor"
	"github.com/antonrybalko/record-demo-go/internal/search"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Scenario holds the inputs of one demonstration run
type Scenario struct {
	RecordName   string
	RecordValue  int
	Increment    int
	Items        []string
	FilterEmpty  bool
	SearchTarget string
}

// DefaultScenario returns the built-in demonstration inputs
func DefaultScenario() Scenario {
	return Scenario{
		RecordName:   "test",
		RecordValue:  10,
		Increment:    5,
		Items:        DefaultItems(),
		FilterEmpty:  true,
		SearchTarget: "item2",
	}
}

// DefaultItems returns the built-in input items
func DefaultItems() []string {
	return []string{"  item1  ", "", "  item2  ", "item3"}
}

// DemoService runs the record/collection demonstration
type DemoService struct {
	processor processor.Processor
	logger    *zap.SugaredLogger
}

// NewDemoService creates a new demo service
func NewDemoService(processor processor.Processor, logger *zap.SugaredLogger) *DemoService {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &DemoService{
		processor: processor,
		logger:    logger,
	}
}

// Run executes the scenario and returns its report. The only error is
// the context's, when it is already done.
func (s *DemoService) Run(ctx context.Context, scenario Scenario) (*domain.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	runID := uuid.New()
	logger := s.logger.With("runID", runID)

	// Record
	record := domain.NewRecord(scenario.RecordName, scenario.RecordValue)
	report := &domain.Report{
		RunID:        runID.String(),
		Name:         record.Name(),
		InitialValue: record.Value(),
		SearchTarget: scenario.SearchTarget,
		FoundIndex:   -1,
	}
	logger.Infow("Created record", "record", record.String())

	report.NewValue = record.Increment(scenario.Increment)
	logger.Infow("Incremented record",
		"amount", scenario.Increment,
		"value", report.NewValue)

	// Collection
	report.ProcessedItems = s.processor.Process(scenario.Items, scenario.FilterEmpty)
	report.DroppedItems = len(scenario.Items) - len(report.ProcessedItems)
	logger.Infow("Processed items",
		"input", len(scenario.Items),
		"output", len(report.ProcessedItems),
		"dropped", report.DroppedItems)

	// Search
	if index, found := search.FindIndex(report.ProcessedItems, scenario.SearchTarget); found {
		report.Found = true
		report.FoundIndex = index
		logger.Infow("Found search target", "target", scenario.SearchTarget, "index", index)
	} else {
		logger.Infow("Search target not found", "target", scenario.SearchTarget)
	}

	return report, nil
}
