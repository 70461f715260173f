package api

var (
	errorMessageMap = map[int64]string{
		999:  "Kesalahan internal server",
		1000: "Permintaan tidak valid",
		1001: "Endpoint tidak ditemukan",
		1002: "Metode HTTP tidak diizinkan",
		1003: "Terlalu banyak permintaan. Silakan coba lagi beberapa saat.",

		1010: "Autentikasi diperlukan.",
		1011: "Sesi telah berakhir. Silakan masuk kembali.",
		1012: "Token tidak valid.",
		1013: "Akses ditolak. Hanya admin yang diizinkan.",
		1014: "Akun tidak valid atau telah dinonaktifkan",

		1100: "Username harus 3–50 karakter (huruf, angka, underscore)",
		1101: "Format email tidak valid",
		1102: "Password minimal 8 karakter",
		1103: "Email atau username sudah terdaftar",
		1104: "Email atau password salah",
		1105: "Akun Anda telah dinonaktifkan",
		1106: "Pengguna tidak ditemukan",
		1107: "Google OAuth belum dikonfigurasi",
		1108: "Token Google tidak ditemukan",
		1109: "Token Google tidak valid atau sudah kadaluarsa",
		1110: "Token tidak valid",
		1111: "Token tidak valid atau sudah kadaluarsa",
		1112: "Token sudah kadaluarsa. Silakan minta reset password baru",

		1200: "Body harus JSON yang valid",
		1201: "lat dan lng wajib diisi dan harus berupa angka",
		1202: "Nilai lat/lng di luar jangkauan yang valid",
		1203: "Pilih minimal satu gejala",
		1204: "Tingkat keparahan harus angka 1–10",
		1205: "Parameter tidak valid",
		1206: "jam harus berupa angka bulat",
		1207: "Anda sudah melaporkan dalam 4 hari terakhir",
		1208: "Laporan tidak ditemukan",

		1300: "Field 'pertanyaan' wajib diisi",
		1301: "lat dan lng wajib diisi",
		1302: "Nilai lat/lng tidak valid",
		1303: "OPENROUTER_API_KEY belum dikonfigurasi di server",
		1304: "Kesalahan layanan AI",

		1400: "Admin tidak dapat mengubah status diri sendiri",
		1401: "Admin tidak dapat menghapus akun diri sendiri",
		1402: "Role harus 'pengguna' atau 'admin'",
	}

	errorInternalServer    = errorJSON(999)
	errorBadRequest        = errorJSON(1000)
	errorNotFound          = errorJSON(1001)
	errorMethodNotAllowed  = errorJSON(1002)
	errorTooManyRequests   = errorJSON(1003)
	errorMissingToken      = errorJSON(1010)
	errorTokenExpired      = errorJSON(1011)
	errorInvalidToken      = errorJSON(1012)
	errorAdminOnly         = errorJSON(1013)
	errorInvalidAccount    = errorJSON(1014)
	errorInvalidUsername   = errorJSON(1100)
	errorInvalidEmail      = errorJSON(1101)
	errorPasswordTooShort  = errorJSON(1102)
	errorPenggunaTaken     = errorJSON(1103)
	errorWrongCredential   = errorJSON(1104)
	errorPenggunaInactive  = errorJSON(1105)
	errorPenggunaNotFound  = errorJSON(1106)
	errorGoogleUnavailable = errorJSON(1107)
	errorGoogleNoToken     = errorJSON(1108)
	errorGoogleInvalid     = errorJSON(1109)
	errorResetTokenEmpty   = errorJSON(1110)
	errorResetTokenUnknown = errorJSON(1111)
	errorResetTokenExpired = errorJSON(1112)

	errorInvalidBody       = errorJSON(1200)
	errorLaporanKoordinat  = errorJSON(1201)
	errorLaporanJangkauan  = errorJSON(1202)
	errorTanpaGejala       = errorJSON(1203)
	errorKeparahan         = errorJSON(1204)
	errorInvalidParameters = errorJSON(1205)
	errorJamBukanBulat     = errorJSON(1206)
	errorCooldown          = errorJSON(1207)
	errorLaporanNotFound   = errorJSON(1208)

	errorPertanyaanKosong  = errorJSON(1300)
	errorAnalisisKoordinat = errorJSON(1301)
	errorAnalisisJangkauan = errorJSON(1302)
	errorAIUnavailable     = errorJSON(1303)
	errorAIService         = errorJSON(1304)

	errorUbahDiriSendiri  = errorJSON(1400)
	errorHapusDiriSendiri = errorJSON(1401)
	errorInvalidRole      = errorJSON(1402)
)

type ErrorResponse struct {
	Kode  int64  `json:"kode"`
	Pesan string `json:"pesan"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Kode:  code,
		Pesan: message,
	}
}

// withDetail appends the cause to the message of an error object
func withDetail(resp ErrorResponse, detail string) ErrorResponse {
	resp.Pesan = resp.Pesan + ": " + detail
	return resp
}
