package controllers

import (
	"testing"

	"github.com/dcode-github/property_listing_app/apperrors"
	"github.com/dcode-github/property_listing_app/models"
	"github.com/dcode-github/property_listing_app/utils"
	"github.com/stretchr/testify/assert"
)

func TestParseOwnershipPolicy(t *testing.T) {
	assert.Equal(t, KeepOriginalOwner, ParseOwnershipPolicy("keep"))
	assert.Equal(t, ReassignToEditor, ParseOwnershipPolicy("reassign"))
	assert.Equal(t, ReassignToEditor, ParseOwnershipPolicy(""))
}

func TestEditOwner(t *testing.T) {
	stored := &models.Property{CreatedBy: "alice"}

	reassign := &Deps{EditOwnership: ReassignToEditor}
	keep := &Deps{EditOwnership: KeepOriginalOwner}

	assert.Equal(t, "bob", reassign.editOwner(stored, "bob"))
	assert.Equal(t, "alice", keep.editOwner(stored, "bob"))
}

func TestRequireUser(t *testing.T) {
	_, err := requireUser(&utils.Session{})
	assert.ErrorIs(t, err, apperrors.ErrLoginRequired)

	sess := &utils.Session{}
	sess.SetUser("alice")
	user, err := requireUser(sess)
	assert.NoError(t, err)
	assert.Equal(t, "alice", user)
}

func TestProfilePathEscapes(t *testing.T) {
	assert.Equal(t, "/profile/alice", profilePath("alice"))
	assert.Equal(t, "/profile/a%2Fb", profilePath("a/b"))
}
