package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Generated number formats (external contracts):
//
//	SKU          {kategoriKode}-{warnaKode}-{seq2}
//	Roll barcode BB-{suppKode}-{YYMM}-{seq3}
//	SP           SP-{vendorKode}-{YYMMDD}-{seq2}
//	Penerimaan   PNR-{spCode}-{seq2}  (spCode = SP no without "SP-")
//	Order        PJ-{SHP|TTK|OFL}-{YYMMDD}-{seq3}
//
// Sequences continue from the highest existing number in their scope so a
// deleted record never frees its number for reuse.

func todayCode(t time.Time) string {
	return t.Format("060102")
}

func yyMM(t time.Time) string {
	return t.Format("0601")
}

// nextSeq parses the numeric tail of the highest existing number and
// returns it plus one. An empty lastNo starts the scope at 1.
func nextSeq(lastNo string) int {
	if lastNo == "" {
		return 1
	}
	idx := strings.LastIndex(lastNo, "-")
	if idx < 0 || idx == len(lastNo)-1 {
		return 1
	}
	n, err := strconv.Atoi(lastNo[idx+1:])
	if err != nil {
		return 1
	}
	return n + 1
}

func formatSKU(kategoriKode, warnaKode string, seq int) string {
	return fmt.Sprintf("%s-%s-%02d", kategoriKode, warnaKode, seq)
}

// supplierShortCode takes the middle initials out of a full supplier code:
// "SUP-TM-01" -> "TM".
func supplierShortCode(kode string) string {
	parts := strings.Split(kode, "-")
	if len(parts) >= 2 && parts[1] != "" {
		return parts[1]
	}
	if len(kode) > 6 {
		return kode[:6]
	}
	return kode
}

func rollBarcodePrefix(supplierKode string, t time.Time) string {
	return fmt.Sprintf("BB-%s-%s-", supplierShortCode(supplierKode), yyMM(t))
}

func spNoPrefix(vendorKode string, t time.Time) string {
	return fmt.Sprintf("SP-%s-%s-", vendorKode, todayCode(t))
}

func pnrNoPrefix(spNo string) string {
	return fmt.Sprintf("PNR-%s-", strings.TrimPrefix(spNo, "SP-"))
}

func orderNoPrefix(channel string, t time.Time) string {
	chCode := map[string]string{
		"Shopee":  "SHP",
		"TikTok":  "TTK",
		"Offline": "OFL",
	}[channel]
	if chCode == "" {
		chCode = "OFL"
	}
	return fmt.Sprintf("PJ-%s-%s-", chCode, todayCode(t))
}

// kodeKategoriFromNama derives a kategori code from the initials of each
// word: "Kemeja Pria" -> "KP".
func kodeKategoriFromNama(nama string) string {
	var b strings.Builder
	for _, word := range strings.Fields(nama) {
		r := []rune(word)
		b.WriteString(strings.ToUpper(string(r[0])))
	}
	return b.String()
}

// kodeSupplierFromNama builds "SUP-{INISIAL}-{seq2}", initials capped at 6.
func kodeSupplierFromNama(nama string, seq int) string {
	inisial := kodeKategoriFromNama(nama)
	if len(inisial) > 6 {
		inisial = inisial[:6]
	}
	return fmt.Sprintf("SUP-%s-%02d", inisial, seq)
}

func kodeVendor(seq int) string {
	return fmt.Sprintf("VN%02d", seq)
}
