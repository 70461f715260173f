package schema

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	RiwayatAnalisisCollection = "riwayat_analisis"
)

// RiwayatAnalisis is one answered question of the AI agent
type RiwayatAnalisis struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID        string             `json:"user_id" bson:"user_id"`
	Pertanyaan    string             `json:"pertanyaan" bson:"pertanyaan"`
	Jawaban       string             `json:"jawaban" bson:"jawaban"`
	Location      GeoJSON            `json:"location" bson:"location"`
	RadiusKm      float64            `json:"radius_km" bson:"radius_km"`
	Jam           int                `json:"jam" bson:"jam"`
	JumlahKasus   int                `json:"jumlah_kasus" bson:"jumlah_kasus"`
	TingkatRisiko string             `json:"tingkat_risiko" bson:"tingkat_risiko"`
	Timestamp     int64              `json:"ts" bson:"ts"`
}
