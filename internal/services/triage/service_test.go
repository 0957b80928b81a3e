// File: internal/services/triage/service_test.go
package triage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medibot-health/go-medibot/internal/domain"
)

type testLogger struct{}

func (testLogger) Info(msg string, keysAndValues ...interface{})  {}
func (testLogger) Error(msg string, keysAndValues ...interface{}) {}
func (testLogger) Debug(msg string, keysAndValues ...interface{}) {}
func (testLogger) Warn(msg string, keysAndValues ...interface{})  {}

type fakeCloud struct {
	reply string
	err   error
}

func (f *fakeCloud) Complete(ctx context.Context, model, prompt string) (string, error) {
	return f.reply, f.err
}

type fakeDoctorRepo struct {
	bySpecialization map[string][]domain.Doctor
}

func (f *fakeDoctorRepo) Create(ctx context.Context, d *domain.Doctor) (*domain.Doctor, error) {
	return d, nil
}

func (f *fakeDoctorRepo) FindByID(ctx context.Context, id uint) (*domain.Doctor, error) {
	return nil, errors.New("not found")
}

func (f *fakeDoctorRepo) FindAll(ctx context.Context) ([]domain.Doctor, error) {
	return nil, nil
}

func (f *fakeDoctorRepo) FindBySpecialization(ctx context.Context, specialization string, limit int) ([]domain.Doctor, error) {
	return f.bySpecialization[specialization], nil
}

func TestMatchSpecialization(t *testing.T) {
	tests := []struct {
		name     string
		symptoms []string
		want     string
	}{
		{"chest pain", []string{"chest pain"}, "Cardiology"},
		{"tamil chest pain", []string{"மார்பு வலி"}, "Cardiology"},
		{"headache", []string{"severe headache since morning"}, "Neurology"},
		{"tooth", []string{"tooth ache"}, "Dentistry"},
		{"unknown", []string{"strange tingling sensation"}, DefaultSpecialization},
		{"empty", nil, DefaultSpecialization},
		{
			"majority wins",
			[]string{"chest pain", "itching", "rash", "skin peeling"},
			"Dermatology",
		},
		{
			// One hit each; the cardiology entry sits earlier in the table.
			"tie keeps earlier entry",
			[]string{"chest pain", "headache"},
			"Cardiology",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchSpecialization(tt.symptoms))
		})
	}
}

func TestMatchSpecializationDeterministic(t *testing.T) {
	symptoms := []string{"chest pain", "headache", "rash", "cough"}
	first := MatchSpecialization(symptoms)
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, MatchSpecialization(symptoms))
	}
}

func TestRecommendUsesModelAnalysis(t *testing.T) {
	cloud := &fakeCloud{reply: `Here you go:
{"primary_specialization":"Cardiology","alternative_specializations":["Pulmonology"],"reasoning":"Chest pain with exertion.","urgent":true}`}
	repo := &fakeDoctorRepo{bySpecialization: map[string][]domain.Doctor{
		"Cardiology": {{Name: "Dr. Priya", Specialization: "Cardiology"}},
	}}
	s := NewService(cloud, "gemini-2.0-flash", repo, testLogger{})

	rec, err := s.Recommend(context.Background(), []string{"chest pain"}, 45, "female", "high")

	require.NoError(t, err)
	assert.Equal(t, "Cardiology", rec.Analysis.Primary)
	assert.Equal(t, []string{"Pulmonology"}, rec.Analysis.Alternatives)
	assert.Equal(t, "model", rec.Analysis.Source)
	assert.True(t, rec.Analysis.Urgent)
	require.Len(t, rec.Doctors, 1)
	assert.Equal(t, "Dr. Priya", rec.Doctors[0].Name)
}

func TestRecommendFallsBackToDictionary(t *testing.T) {
	cloud := &fakeCloud{err: errors.New("503 service unavailable")}
	s := NewService(cloud, "gemini-2.0-flash", &fakeDoctorRepo{}, testLogger{})

	rec, err := s.Recommend(context.Background(), []string{"chest pain"}, 45, "male", "low")

	require.NoError(t, err)
	assert.Equal(t, "Cardiology", rec.Analysis.Primary)
	assert.Equal(t, "dictionary", rec.Analysis.Source)
	assert.Empty(t, rec.Analysis.Alternatives)
	assert.NotNil(t, rec.Analysis.Alternatives, "alternatives must be an empty list, not null")
	assert.False(t, rec.Analysis.Urgent)
}

func TestRecommendRejectsUnknownModelLabel(t *testing.T) {
	cloud := &fakeCloud{reply: `{"primary_specialization":"Wizardry","alternative_specializations":[],"reasoning":"...","urgent":false}`}
	s := NewService(cloud, "gemini-2.0-flash", &fakeDoctorRepo{}, testLogger{})

	rec, err := s.Recommend(context.Background(), []string{"mystery symptom"}, 30, "male", "low")

	require.NoError(t, err)
	assert.Equal(t, "dictionary", rec.Analysis.Source)
	assert.Equal(t, DefaultSpecialization, rec.Analysis.Primary)
}

func TestRecommendRequiresSymptoms(t *testing.T) {
	s := NewService(&fakeCloud{}, "gemini-2.0-flash", &fakeDoctorRepo{}, testLogger{})

	_, err := s.Recommend(context.Background(), nil, 30, "male", "low")

	assert.Error(t, err)
}

func TestSpecializationsListIsComplete(t *testing.T) {
	assert.Len(t, Specializations, 18)
	for _, entry := range symptomTable {
		assert.True(t, isKnownSpecialization(entry.Specialization),
			"table entry %q maps to unknown label %q", entry.Phrase, entry.Specialization)
	}
}
