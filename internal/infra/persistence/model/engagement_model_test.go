package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestReactionModel_IndexPerTable(t *testing.T) {
	cache := &sync.Map{}

	for _, table := range []string{TableLikes, TableDislikes, TableLoves, TableSaves} {
		t.Run(table, func(t *testing.T) {
			s, err := schema.ParseWithSpecialTableName(&ReactionModel{}, cache, schema.NamingStrategy{}, table)
			require.NoError(t, err)

			index := s.LookIndex("idx_" + table + "_campaign_user")
			require.NotNil(t, index)
			assert.Equal(t, "UNIQUE", index.Class)
			require.Len(t, index.Fields, 2)
			assert.Equal(t, "campaign_id", index.Fields[0].DBName)
			assert.Equal(t, "user_id", index.Fields[1].DBName)
		})
	}
}

func TestLocatedEventModel_IndexPerTable(t *testing.T) {
	cache := &sync.Map{}

	for _, table := range []string{TableImpressions, TableClicks} {
		t.Run(table, func(t *testing.T) {
			s, err := schema.ParseWithSpecialTableName(&LocatedEventModel{}, cache, schema.NamingStrategy{}, table)
			require.NoError(t, err)

			index := s.LookIndex("idx_" + table + "_campaign_user_time")
			require.NotNil(t, index)
			assert.Len(t, index.Fields, 3)
		})
	}
}
