// File: internal/services/triage/service.go
package triage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/medibot-health/go-medibot/internal/domain"
	doctorrepo "github.com/medibot-health/go-medibot/internal/repository/doctor"
	"github.com/medibot-health/go-medibot/internal/services/ai"
)

// Logger matches the shared key/value logging interface.
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

// Analysis is the structured specialization recommendation.
type Analysis struct {
	Primary      string   `json:"primary_specialization"`
	Alternatives []string `json:"alternative_specializations"`
	Reasoning    string   `json:"reasoning"`
	Urgent       bool     `json:"urgent"`
	Source       string   `json:"source"` // "model" or "dictionary"
}

// Recommendation pairs the analysis with matching available doctors.
type Recommendation struct {
	Analysis Analysis        `json:"analysis"`
	Doctors  []domain.Doctor `json:"doctors"`
}

// Service recommends a specialization for reported symptoms, preferring a
// model-generated analysis and degrading to the static symptom table.
type Service struct {
	cloud      ai.CompletionProvider
	cloudModel string
	doctorRepo doctorrepo.DoctorRepository
	logger     Logger
}

func NewService(cloud ai.CompletionProvider, cloudModel string, doctorRepo doctorrepo.DoctorRepository, logger Logger) *Service {
	return &Service{
		cloud:      cloud,
		cloudModel: cloudModel,
		doctorRepo: doctorRepo,
		logger:     logger,
	}
}

// Recommend returns a specialization analysis plus up to five matching
// doctors. The dictionary hint is always computed and fed to the model; if
// the model call fails the hint becomes the answer.
func (s *Service) Recommend(ctx context.Context, symptoms []string, age int, gender, urgency string) (*Recommendation, error) {
	if len(symptoms) == 0 {
		return nil, fmt.Errorf("at least one symptom is required")
	}

	hint := MatchSpecialization(symptoms)

	analysis, err := s.modelAnalysis(ctx, symptoms, age, gender, urgency, hint)
	if err != nil {
		s.logger.Warn("model analysis failed; using dictionary fallback", "error", err)
		analysis = s.dictionaryAnalysis(symptoms, hint, urgency)
	}

	doctors, err := s.doctorRepo.FindBySpecialization(ctx, analysis.Primary, 5)
	if err != nil {
		s.logger.Error("doctor lookup failed", "specialization", analysis.Primary, "error", err)
		doctors = nil
	}

	return &Recommendation{Analysis: *analysis, Doctors: doctors}, nil
}

// MatchSpecialization counts symptom-table phrase hits per specialization
// and returns the label with the most hits, defaulting to General Medicine.
// Ties keep the specialization whose entry appears earlier in the table.
func MatchSpecialization(symptoms []string) string {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)

	for _, symptom := range symptoms {
		lower := strings.ToLower(symptom)
		for i, entry := range symptomTable {
			if strings.Contains(lower, entry.Phrase) {
				counts[entry.Specialization]++
				if _, ok := firstSeen[entry.Specialization]; !ok {
					firstSeen[entry.Specialization] = i
				}
			}
		}
	}

	best := DefaultSpecialization
	bestCount := 0
	bestOrder := len(symptomTable)
	for spec, count := range counts {
		order := firstSeen[spec]
		if count > bestCount || (count == bestCount && order < bestOrder) {
			best = spec
			bestCount = count
			bestOrder = order
		}
	}
	return best
}

func (s *Service) modelAnalysis(ctx context.Context, symptoms []string, age int, gender, urgency, hint string) (*Analysis, error) {
	prompt := fmt.Sprintf(`You are a medical triage assistant. A patient reports:
Symptoms: %s
Age: %d, Gender: %s, Urgency: %s
A keyword screen suggests %q.

Pick one specialization from this list only: %s.
Reply with JSON only, shaped exactly like:
{"primary_specialization":"...","alternative_specializations":["..."],"reasoning":"...","urgent":false}`,
		strings.Join(symptoms, "; "), age, gender, urgency, hint,
		strings.Join(Specializations, ", "))

	raw, err := s.cloud.Complete(ctx, s.cloudModel, prompt)
	if err != nil {
		return nil, err
	}

	var analysis Analysis
	if err := json.Unmarshal([]byte(extractJSON(raw)), &analysis); err != nil {
		return nil, fmt.Errorf("model returned unparseable analysis: %w", err)
	}
	if !isKnownSpecialization(analysis.Primary) {
		return nil, fmt.Errorf("model returned unknown specialization %q", analysis.Primary)
	}
	analysis.Source = "model"
	return &analysis, nil
}

func (s *Service) dictionaryAnalysis(symptoms []string, hint, urgency string) *Analysis {
	reasoning := "Matched symptom keywords against the specialization dictionary."
	if hint == DefaultSpecialization {
		reasoning = "No symptom keywords matched; defaulting to General Medicine."
	}
	return &Analysis{
		Primary:      hint,
		Alternatives: []string{},
		Reasoning:    reasoning,
		Urgent:       strings.EqualFold(urgency, "high") || strings.EqualFold(urgency, "emergency"),
		Source:       "dictionary",
	}
}

func isKnownSpecialization(label string) bool {
	for _, s := range Specializations {
		if s == label {
			return true
		}
	}
	return false
}

// extractJSON trims model chatter (code fences, prose) around a JSON object.
func extractJSON(raw string) string {
	start := strings.IndexByte(raw, '{')
	end := strings.LastIndexByte(raw, '}')
	if start >= 0 && end > start {
		return raw[start : end+1]
	}
	return raw
}
