package sellerprofile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinSplitAddress(t *testing.T) {
	t.Run("Success - full address round trips", func(t *testing.T) {
		addr := Address{
			PlotNumber:   "12",
			BuildingName: "Tower A",
			StreetName:   "MG Road",
			Landmark:     "Near Park",
		}

		joined := JoinAddress(addr)
		assert.Equal(t, "12,Tower A,MG Road,Near Park", joined)

		back := SplitAddress(joined)
		assert.Equal(t, addr, back)
	})

	t.Run("Success - partial address keeps positional order", func(t *testing.T) {
		joined := JoinAddress(Address{PlotNumber: "7", StreetName: "Link Road"})
		back := SplitAddress(joined)

		assert.Equal(t, "7", back.PlotNumber)
		assert.Equal(t, "", back.BuildingName)
		assert.Equal(t, "Link Road", back.StreetName)
	})

	t.Run("Success - extra commas fold into the landmark", func(t *testing.T) {
		back := SplitAddress("12, Tower A, MG Road, Near Park, Fort, Mumbai")
		assert.Equal(t, "Near Park, Fort, Mumbai", back.Landmark)
	})

	t.Run("Success - empty string yields empty address", func(t *testing.T) {
		assert.Equal(t, Address{}, SplitAddress(""))
	})
}

func TestSplitCategories(t *testing.T) {
	assert.Equal(t, []string{"machinery", "tools"}, SplitCategories("machinery, tools"))
	assert.Nil(t, SplitCategories(""))
}
