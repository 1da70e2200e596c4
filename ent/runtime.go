// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/quizdeck/ent/answerevent"
	"github.com/abhisek/quizdeck/ent/question"
	"github.com/abhisek/quizdeck/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescText is the schema descriptor for text field.
	questionDescText := questionFields[1].Descriptor()
	// question.TextValidator is a validator for the "text" field. It is called by the builders before save.
	question.TextValidator = questionDescText.Validators[0].(func(string) error)
	// questionDescVersion is the schema descriptor for version field.
	questionDescVersion := questionFields[3].Descriptor()
	// question.DefaultVersion holds the default value on creation for the version field.
	question.DefaultVersion = questionDescVersion.Default.(int)
	// questionDescMinKeywords is the schema descriptor for min_keywords field.
	questionDescMinKeywords := questionFields[8].Descriptor()
	// question.DefaultMinKeywords holds the default value on creation for the min_keywords field.
	question.DefaultMinKeywords = questionDescMinKeywords.Default.(int)
	// questionDescMaxLength is the schema descriptor for max_length field.
	questionDescMaxLength := questionFields[9].Descriptor()
	// question.DefaultMaxLength holds the default value on creation for the max_length field.
	question.DefaultMaxLength = questionDescMaxLength.Default.(int)
}
