package schema

const (
	WilayahCollection = "wilayah"
)

// Wilayah is the centroid of a named neighbourhood
type Wilayah struct {
	Nama     string  `json:"nama" bson:"nama"`
	Location GeoJSON `json:"location" bson:"location"`
}

type Kluster struct {
	Lat  float64
	Lng  float64
	Nama string
}

func (k Kluster) Wilayah() Wilayah {
	return Wilayah{
		Nama:     k.Nama,
		Location: NewGeoJSONPoint(Location{Latitude: k.Lat, Longitude: k.Lng}),
	}
}

// DaftarKluster lists the known neighbourhood centroids. It seeds the
// wilayah collection and the demo data.
var DaftarKluster = []Kluster{
	{-6.2615, 106.8106, "Kebayoran Baru"},
	{-6.2700, 106.7950, "Pesanggrahan"},
	{-6.2480, 106.8300, "Pasar Minggu"},
	{-6.1862, 106.8340, "Menteng"},
	{-6.1750, 106.8200, "Tanah Abang"},
	{-6.2250, 106.9000, "Jatinegara"},
	{-6.2450, 106.8900, "Kramat Jati"},
	{-6.1680, 106.7600, "Kebon Jeruk"},
	{-6.1200, 106.8800, "Penjaringan"},
	{-6.4025, 106.7942, "Depok Timur"},
	{-6.2349, 106.9921, "Bekasi Utara"},
	{-6.2700, 107.0100, "Bekasi Selatan"},
	{-6.1783, 106.6319, "Ciledug"},
	{-6.2900, 106.7100, "Serpong"},
	{-6.3100, 106.6950, "Ciputat"},
	{-6.5950, 106.8160, "Bogor Tengah"},
	{-6.9175, 107.6191, "Bandung Tengah"},
	{-6.9350, 107.6050, "Bandung Selatan"},
	{-7.2575, 112.7521, "Surabaya Pusat"},
	{-7.7972, 110.3688, "Yogyakarta Kota"},
	{-6.3000, 106.8500, "Cilandak"},
	{-6.1600, 106.9200, "Pulo Gadung"},
	{-6.2100, 106.8450, "Pancoran"},
	{-6.1400, 106.8600, "Koja"},
	{-6.1950, 106.7750, "Palmerah"},
	{-6.3500, 106.8200, "Lenteng Agung"},
	{-6.2800, 106.8600, "Tebet"},
	{-6.1550, 106.8950, "Cakung"},
	{-6.2200, 106.7600, "Kebayoran Lama"},
	{-6.3800, 106.8300, "Jagakarsa"},
	{-6.1300, 106.7400, "Cengkareng"},
	{-6.2050, 106.7300, "Kembangan"},
	{-7.3300, 112.7400, "Surabaya Selatan"},
	{-7.2800, 112.7900, "Surabaya Timur"},
	{-7.2400, 112.7200, "Surabaya Barat"},
	{-6.9600, 107.5800, "Bandung Barat"},
	{-7.8300, 110.3500, "Sleman"},
	{-7.8600, 110.4200, "Bantul"},
	{-6.9800, 110.4200, "Semarang Tengah"},
	{-6.9600, 110.3900, "Semarang Barat"},
}
