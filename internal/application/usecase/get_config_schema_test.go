package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tvfocus/internal/application/port/mocks"
	"github.com/bnema/tvfocus/internal/application/usecase"
	"github.com/bnema/tvfocus/internal/domain/entity"
)

func schemaKeys() []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     "info",
			Description: "Log verbosity level",
			Values:      []string{"trace", "debug", "info", "warn", "error"},
			Section:     "Logging",
		},
		{
			Key:         "navigation.pan_threshold",
			Type:        "float",
			Default:     "60",
			Description: "Pan distance that moves focus one step",
			Range:       ">= 0",
			Section:     "Navigation",
		},
		{
			Key:         "navigation.play_pause_action",
			Type:        "string",
			Default:     "none",
			Description: "What the play/pause button does",
			Values:      []string{"none", "toggles_pan_control", "shifts_focus", "notifies"},
			Section:     "Navigation",
		},
	}
}

func TestGetConfigSchemaUseCase_Execute(t *testing.T) {
	t.Run("returns schema keys from provider", func(t *testing.T) {
		// Arrange
		mockProvider := mocks.NewMockConfigSchemaProvider(t)
		mockProvider.EXPECT().GetSchema().Return(schemaKeys())

		uc := usecase.NewGetConfigSchemaUseCase(mockProvider)

		// Act
		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{})

		// Assert
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Len(t, result.Keys, 3)
		assert.Equal(t, "logging.level", result.Keys[0].Key)
		mock.AssertExpectationsForObjects(t, mockProvider)
	})

	t.Run("filters by section", func(t *testing.T) {
		// Arrange
		mockProvider := mocks.NewMockConfigSchemaProvider(t)
		mockProvider.EXPECT().GetSchema().Return(schemaKeys())

		uc := usecase.NewGetConfigSchemaUseCase(mockProvider)

		// Act
		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{Section: "Navigation"})

		// Assert
		require.NoError(t, err)
		require.Len(t, result.Keys, 2)
		assert.Equal(t, "navigation.pan_threshold", result.Keys[0].Key)
		assert.Equal(t, ">= 0", result.Keys[0].Range)
		assert.Empty(t, result.Keys[0].Values)
		assert.Equal(t, "navigation.play_pause_action", result.Keys[1].Key)
	})

	t.Run("section match ignores case", func(t *testing.T) {
		// Arrange
		mockProvider := mocks.NewMockConfigSchemaProvider(t)
		mockProvider.EXPECT().GetSchema().Return(schemaKeys())

		uc := usecase.NewGetConfigSchemaUseCase(mockProvider)

		// Act
		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{Section: "logging"})

		// Assert
		require.NoError(t, err)
		require.Len(t, result.Keys, 1)
		assert.Equal(t, "logging.level", result.Keys[0].Key)
	})

	t.Run("unknown section yields no keys", func(t *testing.T) {
		// Arrange
		mockProvider := mocks.NewMockConfigSchemaProvider(t)
		mockProvider.EXPECT().GetSchema().Return(schemaKeys())

		uc := usecase.NewGetConfigSchemaUseCase(mockProvider)

		// Act
		result, err := uc.Execute(context.Background(), usecase.GetConfigSchemaInput{Section: "Appearance"})

		// Assert
		require.NoError(t, err)
		assert.NotNil(t, result.Keys)
		assert.Empty(t, result.Keys)
	})
}
