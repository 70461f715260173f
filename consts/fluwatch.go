package consts

import "time"

const (
	AppName = "FluWatch API"

	BackgroundQueue = "fluwatch_background"

	WilayahTaskList        = "fluwatch-wilayah-tasks"
	WilayahWorkflowName    = "ResolveWilayahWorkflow"
	WilayahWorkflowIDFmt   = "laporan-wilayah-%s"
	ResolveWilayahActivity = "ResolveWilayahActivity"
	SimpanWilayahActivity  = "SimpanWilayahActivity"

	TaskKirimEmailReset       = "kirim_email_reset"
	TaskHapusTokenKedaluwarsa = "hapus_token_kedaluwarsa"
)

// report limits
const (
	JedaLaporan      = 4 * 24 * time.Hour
	DefaultJam       = 48
	MaxJamLaporan    = 720
	DefaultLimit     = 200
	MaxLimitLaporan  = 1000
	MaxLaporanPeta   = 500
	BatasMarkerBaru  = 2 * time.Hour
	DefaultKeparahan = 5
	MaxDurasiHari    = 30
)

// analysis limits
const (
	DefaultRadiusKm = 10
	MinRadiusKm     = 1
	MaxRadiusKm     = 50
	MaxJamAnalisis  = 168

	DefaultRiwayatLimit = 20
	MaxRiwayatLimit     = 100
)

// account limits
const (
	MinPasswordLength = 8
	ResetTokenBytes   = 48
	ResetTokenTTL     = time.Hour
	DefaultJWTExpire  = 24

	DefaultPerHalaman = 20
	MaxPerHalaman     = 100
	MaxHalaman        = 1000000
)
