package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniqueVaccineDetailsFirstWins(t *testing.T) {
	appt := Appointment{
		VaccineDetails: []VaccineDetail{
			{VaccineDetailsID: "7", DoseName: "Hexaxim (3 doses)", Price: 100000},
			{VaccineDetailsID: "7", DoseName: "Hexaxim (3 doses)", Price: 100000},
			{VaccineDetailsID: "9", DoseName: "Varivax (2 doses)", Price: 50000},
		},
	}

	unique := appt.UniqueVaccineDetails()
	assert.Len(t, unique, 2)
	assert.Equal(t, "7", unique[0].VaccineDetailsID)
	assert.Equal(t, "9", unique[1].VaccineDetailsID)
}

func TestTotalPriceIgnoresDuplicateLines(t *testing.T) {
	appt := Appointment{
		VaccineDetails: []VaccineDetail{
			{VaccineDetailsID: "7", Price: 100000},
			{VaccineDetailsID: "7", Price: 100000},
			{VaccineDetailsID: "9", Price: 50000},
		},
	}
	assert.Equal(t, int64(150000), appt.TotalPrice())
}

func TestTotalPriceEmpty(t *testing.T) {
	var appt Appointment
	assert.Equal(t, int64(0), appt.TotalPrice())
}
