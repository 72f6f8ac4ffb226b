package privacy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifier_Classify(t *testing.T) {
	classifier := NewClassifier(false)

	tests := []struct {
		name         string
		query        string
		wantLevel    Level
		wantCategory Category
		wantLocal    bool
	}{
		{
			name:         "plain factual query is public",
			query:        "What is the capital of France?",
			wantLevel:    LevelPublic,
			wantCategory: CategoryNone,
			wantLocal:    false,
		},
		{
			name:         "health content is private",
			query:        "What are the symptoms of my medication side effects?",
			wantLevel:    LevelPrivate,
			wantCategory: CategoryHealth,
			wantLocal:    true,
		},
		{
			name:         "financial content is private",
			query:        "How much do I make per year? My salary is $150000",
			wantLevel:    LevelPrivate,
			wantCategory: CategoryFinancial,
			wantLocal:    true,
		},
		{
			name:         "identity content is confidential",
			query:        "My SSN is 123-45-6789",
			wantLevel:    LevelConfidential,
			wantCategory: CategoryIdentity,
			wantLocal:    true,
		},
		{
			name:         "personal content is sensitive but may leave",
			query:        "I feel really sad about my relationship",
			wantLevel:    LevelSensitive,
			wantCategory: CategoryPersonal,
			wantLocal:    false,
		},
		{
			name:         "location content is sensitive",
			query:        "Where do I live? My home address is on file",
			wantLevel:    LevelSensitive,
			wantCategory: CategoryLocation,
			wantLocal:    false,
		},
		{
			name:         "work content is sensitive",
			query:        "This is confidential company information",
			wantLevel:    LevelSensitive,
			wantCategory: CategoryWork,
			wantLocal:    false,
		},
		{
			name:         "legal content is private",
			query:        "My lawyer said I should sue",
			wantLevel:    LevelPrivate,
			wantCategory: CategoryLegal,
			wantLocal:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifier.Classify(tt.query)
			assert.Equal(t, tt.wantLevel, got.Level)
			assert.Contains(t, got.Categories, tt.wantCategory)
			assert.Equal(t, tt.wantLocal, got.ShouldStayLocal)
		})
	}

	t.Run("multiple categories take the highest level", func(t *testing.T) {
		got := classifier.Classify("My doctor said my salary isn't enough for the surgery")
		assert.Contains(t, got.Categories, CategoryHealth)
		assert.Contains(t, got.Categories, CategoryFinancial)
		assert.Equal(t, LevelPrivate, got.Level)
	})

	t.Run("confidence grows with the number of hits", func(t *testing.T) {
		weak := classifier.Classify("I have a headache")
		strong := classifier.Classify("My doctor says my salary stress is causing anxiety and I feel sad")
		assert.Greater(t, strong.Confidence, weak.Confidence)
		assert.LessOrEqual(t, strong.Confidence, 0.95)
	})

	t.Run("public verdict carries a reason", func(t *testing.T) {
		got := classifier.Classify("latest release notes for the compiler")
		assert.Equal(t, 0.8, got.Confidence)
		assert.NotEmpty(t, got.Reason)
	})

	t.Run("repeated classification is deterministic", func(t *testing.T) {
		first := classifier.Classify("My doctor said my salary isn't enough")
		second := classifier.Classify("My doctor said my salary isn't enough")
		assert.Equal(t, first, second)
	})
}

func TestClassifier_StrictMode(t *testing.T) {
	t.Run("strict pins sensitive queries local", func(t *testing.T) {
		strict := NewClassifier(true)
		got := strict.Classify("I feel really sad about my relationship")
		assert.Equal(t, LevelSensitive, got.Level)
		assert.True(t, got.ShouldStayLocal)
	})

	t.Run("strict leaves public queries alone", func(t *testing.T) {
		strict := NewClassifier(true)
		got := strict.Classify("What is the capital of France?")
		assert.False(t, got.ShouldStayLocal)
	})
}

func TestClassifier_Helpers(t *testing.T) {
	classifier := NewClassifier(false)

	t.Run("is sensitive", func(t *testing.T) {
		assert.True(t, classifier.IsSensitive("My doctor prescribed medication"))
		assert.False(t, classifier.IsSensitive("What is the capital of France?"))
	})

	t.Run("must stay local", func(t *testing.T) {
		assert.True(t, classifier.MustStayLocal("My SSN is 123-45-6789"))
		assert.False(t, classifier.MustStayLocal("What is Python?"))
		// Sensitive is not must-stay-local outside strict mode.
		assert.False(t, classifier.MustStayLocal("I feel sad"))
	})
}

func TestLevel_AtLeast(t *testing.T) {
	assert.True(t, LevelConfidential.AtLeast(LevelPrivate))
	assert.True(t, LevelPrivate.AtLeast(LevelPrivate))
	assert.True(t, LevelSensitive.AtLeast(LevelPublic))
	assert.False(t, LevelPublic.AtLeast(LevelSensitive))
	assert.False(t, LevelSensitive.AtLeast(LevelConfidential))
}
