// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/AhmetShbz/wordrush/ent/achievementevent"
	"github.com/AhmetShbz/wordrush/ent/ledgerevent"
	"github.com/AhmetShbz/wordrush/ent/schema"
	"github.com/AhmetShbz/wordrush/ent/sessionevent"
	"github.com/AhmetShbz/wordrush/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	achievementeventMixin := schema.AchievementEvent{}.Mixin()
	achievementeventMixinFields0 := achievementeventMixin[0].Fields()
	_ = achievementeventMixinFields0
	achievementeventFields := schema.AchievementEvent{}.Fields()
	_ = achievementeventFields
	// achievementeventDescTimestamp is the schema descriptor for timestamp field.
	achievementeventDescTimestamp := achievementeventMixinFields0[1].Descriptor()
	// achievementevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	achievementevent.DefaultTimestamp = achievementeventDescTimestamp.Default.(func() time.Time)
	// achievementeventDescAchievementID is the schema descriptor for achievement_id field.
	achievementeventDescAchievementID := achievementeventFields[0].Descriptor()
	// achievementevent.AchievementIDValidator is a validator for the "achievement_id" field. It is called by the builders before save.
	achievementevent.AchievementIDValidator = achievementeventDescAchievementID.Validators[0].(func(string) error)
	// achievementeventDescName is the schema descriptor for name field.
	achievementeventDescName := achievementeventFields[1].Descriptor()
	// achievementevent.NameValidator is a validator for the "name" field. It is called by the builders before save.
	achievementevent.NameValidator = achievementeventDescName.Validators[0].(func(string) error)
	// achievementeventDescReward is the schema descriptor for reward field.
	achievementeventDescReward := achievementeventFields[2].Descriptor()
	// achievementevent.RewardValidator is a validator for the "reward" field. It is called by the builders before save.
	achievementevent.RewardValidator = achievementeventDescReward.Validators[0].(func(int) error)
	// achievementeventDescSessionID is the schema descriptor for session_id field.
	achievementeventDescSessionID := achievementeventFields[3].Descriptor()
	// achievementevent.DefaultSessionID holds the default value on creation for the session_id field.
	achievementevent.DefaultSessionID = achievementeventDescSessionID.Default.(string)
	ledgereventMixin := schema.LedgerEvent{}.Mixin()
	ledgereventMixinFields0 := ledgereventMixin[0].Fields()
	_ = ledgereventMixinFields0
	ledgereventFields := schema.LedgerEvent{}.Fields()
	_ = ledgereventFields
	// ledgereventDescTimestamp is the schema descriptor for timestamp field.
	ledgereventDescTimestamp := ledgereventMixinFields0[1].Descriptor()
	// ledgerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	ledgerevent.DefaultTimestamp = ledgereventDescTimestamp.Default.(func() time.Time)
	// ledgereventDescBalanceAfter is the schema descriptor for balance_after field.
	ledgereventDescBalanceAfter := ledgereventFields[1].Descriptor()
	// ledgerevent.BalanceAfterValidator is a validator for the "balance_after" field. It is called by the builders before save.
	ledgerevent.BalanceAfterValidator = ledgereventDescBalanceAfter.Validators[0].(func(int) error)
	// ledgereventDescReason is the schema descriptor for reason field.
	ledgereventDescReason := ledgereventFields[2].Descriptor()
	// ledgerevent.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	ledgerevent.ReasonValidator = ledgereventDescReason.Validators[0].(func(string) error)
	// ledgereventDescSessionID is the schema descriptor for session_id field.
	ledgereventDescSessionID := ledgereventFields[3].Descriptor()
	// ledgerevent.DefaultSessionID holds the default value on creation for the session_id field.
	ledgerevent.DefaultSessionID = ledgereventDescSessionID.Default.(string)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescMode is the schema descriptor for mode field.
	sessioneventDescMode := sessioneventFields[2].Descriptor()
	// sessionevent.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	sessionevent.ModeValidator = sessioneventDescMode.Validators[0].(func(string) error)
	// sessioneventDescTier is the schema descriptor for tier field.
	sessioneventDescTier := sessioneventFields[3].Descriptor()
	// sessionevent.TierValidator is a validator for the "tier" field. It is called by the builders before save.
	sessionevent.TierValidator = sessioneventDescTier.Validators[0].(func(string) error)
	// sessioneventDescOutcome is the schema descriptor for outcome field.
	sessioneventDescOutcome := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultOutcome holds the default value on creation for the outcome field.
	sessionevent.DefaultOutcome = sessioneventDescOutcome.Default.(string)
	// sessioneventDescScore is the schema descriptor for score field.
	sessioneventDescScore := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultScore holds the default value on creation for the score field.
	sessionevent.DefaultScore = sessioneventDescScore.Default.(int)
	// sessioneventDescItemsCompleted is the schema descriptor for items_completed field.
	sessioneventDescItemsCompleted := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultItemsCompleted holds the default value on creation for the items_completed field.
	sessionevent.DefaultItemsCompleted = sessioneventDescItemsCompleted.Default.(int)
	// sessioneventDescComboPeak is the schema descriptor for combo_peak field.
	sessioneventDescComboPeak := sessioneventFields[7].Descriptor()
	// sessionevent.DefaultComboPeak holds the default value on creation for the combo_peak field.
	sessionevent.DefaultComboPeak = sessioneventDescComboPeak.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[8].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
