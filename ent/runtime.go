// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/chilltutor/ent/flashcard"
	"github.com/abhisek/chilltutor/ent/llmrequestevent"
	"github.com/abhisek/chilltutor/ent/quizsession"
	"github.com/abhisek/chilltutor/ent/schema"
	"github.com/abhisek/chilltutor/ent/topic"
	"github.com/abhisek/chilltutor/ent/turnevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	flashcardFields := schema.Flashcard{}.Fields()
	_ = flashcardFields
	// flashcardDescQuestion is the schema descriptor for question field.
	flashcardDescQuestion := flashcardFields[2].Descriptor()
	// flashcard.QuestionValidator is a validator for the "question" field. It is called by the builders before save.
	flashcard.QuestionValidator = flashcardDescQuestion.Validators[0].(func(string) error)
	// flashcardDescAnswer is the schema descriptor for answer field.
	flashcardDescAnswer := flashcardFields[3].Descriptor()
	// flashcard.DefaultAnswer holds the default value on creation for the answer field.
	flashcard.DefaultAnswer = flashcardDescAnswer.Default.(string)
	// flashcardDescMarkingCriteria is the schema descriptor for marking_criteria field.
	flashcardDescMarkingCriteria := flashcardFields[4].Descriptor()
	// flashcard.MarkingCriteriaValidator is a validator for the "marking_criteria" field. It is called by the builders before save.
	flashcard.MarkingCriteriaValidator = flashcardDescMarkingCriteria.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	quizsessionFields := schema.QuizSession{}.Fields()
	_ = quizsessionFields
	// quizsessionDescSessionID is the schema descriptor for session_id field.
	quizsessionDescSessionID := quizsessionFields[0].Descriptor()
	// quizsession.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	quizsession.SessionIDValidator = quizsessionDescSessionID.Validators[0].(func(string) error)
	// quizsessionDescUpdatedAt is the schema descriptor for updated_at field.
	quizsessionDescUpdatedAt := quizsessionFields[2].Descriptor()
	// quizsession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	quizsession.DefaultUpdatedAt = quizsessionDescUpdatedAt.Default.(func() time.Time)
	// quizsession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	quizsession.UpdateDefaultUpdatedAt = quizsessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	topicFields := schema.Topic{}.Fields()
	_ = topicFields
	// topicDescName is the schema descriptor for name field.
	topicDescName := topicFields[1].Descriptor()
	// topic.NameValidator is a validator for the "name" field. It is called by the builders before save.
	topic.NameValidator = topicDescName.Validators[0].(func(string) error)
	turneventMixin := schema.TurnEvent{}.Mixin()
	turneventMixinFields0 := turneventMixin[0].Fields()
	_ = turneventMixinFields0
	turneventFields := schema.TurnEvent{}.Fields()
	_ = turneventFields
	// turneventDescTimestamp is the schema descriptor for timestamp field.
	turneventDescTimestamp := turneventMixinFields0[1].Descriptor()
	// turnevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	turnevent.DefaultTimestamp = turneventDescTimestamp.Default.(func() time.Time)
	// turneventDescSessionID is the schema descriptor for session_id field.
	turneventDescSessionID := turneventFields[0].Descriptor()
	// turnevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	turnevent.SessionIDValidator = turneventDescSessionID.Validators[0].(func(string) error)
	// turneventDescFromState is the schema descriptor for from_state field.
	turneventDescFromState := turneventFields[1].Descriptor()
	// turnevent.FromStateValidator is a validator for the "from_state" field. It is called by the builders before save.
	turnevent.FromStateValidator = turneventDescFromState.Validators[0].(func(string) error)
	// turneventDescToState is the schema descriptor for to_state field.
	turneventDescToState := turneventFields[2].Descriptor()
	// turnevent.ToStateValidator is a validator for the "to_state" field. It is called by the builders before save.
	turnevent.ToStateValidator = turneventDescToState.Validators[0].(func(string) error)
	// turneventDescCardID is the schema descriptor for card_id field.
	turneventDescCardID := turneventFields[3].Descriptor()
	// turnevent.DefaultCardID holds the default value on creation for the card_id field.
	turnevent.DefaultCardID = turneventDescCardID.Default.(int)
	// turneventDescAttempt is the schema descriptor for attempt field.
	turneventDescAttempt := turneventFields[4].Descriptor()
	// turnevent.DefaultAttempt holds the default value on creation for the attempt field.
	turnevent.DefaultAttempt = turneventDescAttempt.Default.(int)
	// turneventDescAnswer is the schema descriptor for answer field.
	turneventDescAnswer := turneventFields[5].Descriptor()
	// turnevent.DefaultAnswer holds the default value on creation for the answer field.
	turnevent.DefaultAnswer = turneventDescAnswer.Default.(string)
	// turneventDescResult is the schema descriptor for result field.
	turneventDescResult := turneventFields[6].Descriptor()
	// turnevent.DefaultResult holds the default value on creation for the result field.
	turnevent.DefaultResult = turneventDescResult.Default.(string)
	// turneventDescScore is the schema descriptor for score field.
	turneventDescScore := turneventFields[7].Descriptor()
	// turnevent.DefaultScore holds the default value on creation for the score field.
	turnevent.DefaultScore = turneventDescScore.Default.(float64)
	// turneventDescCardCompleted is the schema descriptor for card_completed field.
	turneventDescCardCompleted := turneventFields[8].Descriptor()
	// turnevent.DefaultCardCompleted holds the default value on creation for the card_completed field.
	turnevent.DefaultCardCompleted = turneventDescCardCompleted.Default.(bool)
}
