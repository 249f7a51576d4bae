package subscribers_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/SolitaireMancala/internal/game/events"
	"github.com/mitchelldurbincs/SolitaireMancala/internal/game/events/subscribers"
)

func TestLoggerSubscriber(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).With().Timestamp().Logger()

	logSub := subscribers.NewLoggerSubscriber("test-logger", logger, zerolog.InfoLevel)

	assert.Equal(t, "test-logger", logSub.ID())

	// Interested in all events by default
	assert.True(t, logSub.InterestedIn(events.TypePlanStarted))
	assert.True(t, logSub.InterestedIn(events.TypeMoveApplied))
	assert.True(t, logSub.InterestedIn("any.event.type"))
}

func TestLoggerSubscriberEventLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	logSub := subscribers.NewLoggerSubscriber("event-logger", logger, zerolog.InfoLevel)

	testCases := []struct {
		name  string
		event events.Event
		check func(t *testing.T, logLine map[string]interface{})
	}{
		{
			name:  "PlanStartedEvent",
			event: events.NewPlanStartedEvent("test-game-1", []int{0, 0, 1, 1, 3, 5, 0}, 10),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(10), logLine["total_seeds"])
				assert.Len(t, logLine["board"], 7)
			},
		},
		{
			name:  "MoveAppliedEvent",
			event: events.NewMoveAppliedEvent("test-game-1", 5, 1, []int{1, 1, 2, 2, 4, 0, 0}),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(5), logLine["house"])
				assert.Equal(t, float64(1), logLine["step"])
			},
		},
		{
			name:  "MoveRejectedEvent",
			event: events.NewMoveRejectedEvent("test-game-1", 4, 3, "illegal move"),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(4), logLine["house"])
				assert.Equal(t, float64(3), logLine["seeds"])
				assert.Equal(t, "illegal move", logLine["reason"])
			},
		},
		{
			name: "PlanCompletedEvent",
			event: events.NewPlanCompletedEvent("test-game-1", []int{5, 1}, []int{2, 0, 2, 2, 4, 0, 0},
				events.OutcomeStuck, 2*time.Second),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, []interface{}{float64(5), float64(1)}, logLine["moves"])
				assert.Equal(t, "stuck", logLine["outcome"])
				assert.Equal(t, float64(2000), logLine["duration"]) // ms
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			buf.Reset()
			logSub.HandleEvent(tc.event)

			logOutput := buf.String()
			require.NotEmpty(t, logOutput, "Log output should not be empty")

			var logLine map[string]interface{}
			err := json.Unmarshal([]byte(logOutput), &logLine)
			require.NoError(t, err, "Should be able to parse log output as JSON")

			assert.Equal(t, "info", logLine["level"])
			assert.Equal(t, "Game event", logLine["message"])
			assert.Equal(t, "event_logger", logLine["subscriber"])
			assert.Equal(t, tc.event.Type(), logLine["event_type"])
			assert.Equal(t, "test-game-1", logLine["game_id"])

			tc.check(t, logLine)
		})
	}
}

func TestLoggerSubscriberWithFilter(t *testing.T) {
	var buf bytes.Buffer
	logSub := subscribers.NewLoggerSubscriber("filtered-logger", zerolog.New(&buf), zerolog.InfoLevel)
	logSub.SetEventFilter([]string{events.TypePlanCompleted, events.TypeMoveRejected})

	assert.True(t, logSub.InterestedIn(events.TypePlanCompleted))
	assert.True(t, logSub.InterestedIn(events.TypeMoveRejected))
	assert.False(t, logSub.InterestedIn(events.TypeMoveApplied))
	assert.False(t, logSub.InterestedIn(events.TypePlanStarted))

	logSub.SetEventFilter(nil)
	assert.True(t, logSub.InterestedIn(events.TypeMoveApplied))
}

func TestLoggerSubscriberThroughBus(t *testing.T) {
	var buf bytes.Buffer
	logSub := subscribers.NewLoggerSubscriber("bus-logger", zerolog.New(&buf), zerolog.InfoLevel)
	logSub.SetEventFilter([]string{events.TypeMoveRejected})

	bus := events.NewEventBusWithLogger(zerolog.Nop())
	bus.Subscribe(logSub)

	bus.Publish(events.NewMoveAppliedEvent("g", 1, 1, []int{1, 0}))
	assert.Empty(t, buf.String())

	bus.Publish(events.NewMoveRejectedEvent("g", 2, 0, "illegal move"))
	assert.Contains(t, buf.String(), `"event_type":"move.rejected"`)
}

func TestLoggerSubscriberLogLevels(t *testing.T) {
	testCases := []struct {
		name     string
		logLevel zerolog.Level
		expected string
	}{
		{"Debug", zerolog.DebugLevel, "debug"},
		{"Info", zerolog.InfoLevel, "info"},
		{"Warn", zerolog.WarnLevel, "warn"},
		{"Error", zerolog.ErrorLevel, "error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := zerolog.New(&buf).Level(tc.logLevel)

			logSub := subscribers.NewLoggerSubscriber("level-logger", logger, tc.logLevel)
			logSub.HandleEvent(events.NewPlanStartedEvent("game1", []int{0}, 0))

			require.NotZero(t, buf.Len())
			var logLine map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &logLine))
			assert.Equal(t, tc.expected, logLine["level"])
		})
	}
}

func TestLoggerSubscriberDevelopmentMode(t *testing.T) {
	var buf bytes.Buffer
	logSub := subscribers.NewLoggerSubscriber("dev-logger", zerolog.New(&buf), zerolog.InfoLevel)
	logSub.SetDevMode(true)

	logSub.HandleEvent(events.NewMoveAppliedEvent("dev-game", 3, 7, []int{7, 1, 2, 0, 0, 0, 0}))

	var logLine map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logLine))

	eventData, ok := logLine["event_data"].(map[string]interface{})
	require.True(t, ok, "event_data should be a JSON object")
	assert.Equal(t, "move.applied", eventData["type"])
	assert.Equal(t, "dev-game", eventData["game_id"])
	assert.Equal(t, float64(3), eventData["house"])
}
