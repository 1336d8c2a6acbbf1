package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/roosych/contactsbook/internal/models"
)

func TestExportPersonal(t *testing.T) {
	contacts := &MockContacts{}
	svc := newTestService(contacts, &MockBooks{}, &MockUsers{}, Options{})

	contacts.On("ListByScope", mock.Anything, models.PersonalScope("u1"), "", 0, 0).
		Return([]models.Contact{
			{ID: "c1", Name: "Rashad Aliyev", Phone1: "+994554555008"},
			{ID: "c2", Name: "Leyla Mammadova", Phone1: "+994501112233"},
		}, nil)

	data, err := svc.ExportPersonal(context.Background(), "u1")
	require.NoError(t, err)

	out := string(data)
	assert.Equal(t, 2, strings.Count(out, "BEGIN:VCARD"))
	assert.Contains(t, out, "FN:Rashad Aliyev")
	assert.Contains(t, out, "+994501112233")
}

func TestExportPersonalEmptyList(t *testing.T) {
	contacts := &MockContacts{}
	svc := newTestService(contacts, &MockBooks{}, &MockUsers{}, Options{})

	contacts.On("ListByScope", mock.Anything, models.PersonalScope("u1"), "", 0, 0).
		Return([]models.Contact{}, nil)

	data, err := svc.ExportPersonal(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, data)
}
