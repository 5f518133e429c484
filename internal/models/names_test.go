package models_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/hearthshare/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestResolveName() {
	alex := suite.createTestMember(models.Member{Username: "alex"})
	sam := suite.createTestMember(models.Member{Username: "sam"})

	index, err := models.NewMemberIndex()
	require.Nil(suite.T(), err)

	tests := []struct {
		name   string
		member uuid.UUID
		self   uuid.UUID
		want   string
	}{
		{"other member", alex.ID, sam.ID, "alex"},
		{"self", sam.ID, sam.ID, "sam (You)"},
		{"deleted profile", uuid.New(), sam.ID, models.UnknownMemberName},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, models.ResolveName(tt.member, tt.self, index))
		})
	}
}
