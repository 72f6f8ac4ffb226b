package services

import (
	entsql "entgo.io/ent/dialect/sql"
)

// appIDColumn is the isolation column every app-scoped table carries.
const appIDColumn = "app_id"

// appScoped builds the app isolation predicate for any app-scoped
// entity. Every service query over an app-scoped table goes through
// it, so a read or conditional write can only ever touch rows stamped
// with the caller's app.
func appScoped[P ~func(*entsql.Selector)](appID string) P {
	return P(entsql.FieldEQ(appIDColumn, appID))
}
