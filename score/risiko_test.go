package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTingkatRisiko(t *testing.T) {
	cases := map[int]string{
		0:   RisikoTidakAda,
		1:   RisikoSporadis,
		2:   RisikoSporadis,
		3:   RisikoKlusterLokal,
		10:  RisikoKlusterLokal,
		11:  RisikoPenyebaranAktif,
		25:  RisikoPenyebaranAktif,
		26:  RisikoPotensiWabah,
		100: RisikoPotensiWabah,
	}

	for jumlah, expected := range cases {
		assert.Equal(t, expected, TingkatRisiko(jumlah), "jumlah kasus %d", jumlah)
	}
}
