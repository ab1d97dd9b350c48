package services

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"colectivo/internal/domain/models"
	"colectivo/internal/pricing"
	"colectivo/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// Voucher tokens, in print order.
const (
	TokenNombre     = "&NOMBRE&"
	TokenFecha      = "&FECHA&"
	TokenDirSalida  = "&DIR_SALIDA&"
	TokenDirDestino = "&DIR_DESTINO&"
	TokenHorIda     = "&HOR_IDA&"
	TokenHorRegreso = "&HOR_REGRESO&"
	TokenDuracion   = "&DURACION&"
	TokenCapacidadu = "&CAPACIDADU&"
	TokenSubtotal   = "&SUBTOTAL&"
	TokenDescuento  = "&DESCUENTO&"
	TokenTotal      = "&TOTAL&"
	TokenAbonado    = "&ABONADO&"
	TokenFechaAbono = "&FECHA_ABONO&"
	TokenLiquidar   = "&LIQUIDAR&"
)

// VoucherData is everything printed on a voucher. Money is kept numeric;
// total and balance are always derived when the mapping is built.
type VoucherData struct {
	Nombre     string
	Fecha      string
	DirSalida  string
	DirDestino string
	HorIda     string
	HorRegreso string
	Duracion   string
	Capacidadu string
	Subtotal   float64
	Descuento  float64
	Abonado    float64
	FechaAbono string
	TextoExtra string
}

func VoucherDataFromOrder(o models.Order) VoucherData {
	return VoucherData{
		Nombre:     o.Nombre,
		Fecha:      o.Fecha,
		DirSalida:  o.DirSalida,
		DirDestino: o.DirDestino,
		HorIda:     o.HorIda,
		HorRegreso: o.HorRegreso,
		Duracion:   strconv.FormatFloat(o.Duracion, 'f', -1, 64),
		Capacidadu: strconv.Itoa(o.Capacidadu),
		Subtotal:   o.Subtotal,
		Descuento:  o.Descuento,
		Abonado:    o.Abonado,
		FechaAbono: o.FechaAbono,
		TextoExtra: o.TextoExtra,
	}
}

// VoucherDataFromMap reads an ad-hoc payload. Keys match as given, lower
// or upper case; amounts tolerate "$1,500.00" style input.
func VoucherDataFromMap(data map[string]any) VoucherData {
	return VoucherData{
		Nombre:     lookupField(data, "nombre"),
		Fecha:      lookupField(data, "fecha"),
		DirSalida:  lookupField(data, "dir_salida"),
		DirDestino: lookupField(data, "dir_destino"),
		HorIda:     lookupField(data, "hor_ida"),
		HorRegreso: lookupField(data, "hor_regreso"),
		Duracion:   lookupField(data, "duracion"),
		Capacidadu: lookupField(data, "capacidadu"),
		Subtotal:   utils.ParseNum(lookupField(data, "subtotal")),
		Descuento:  utils.ParseNum(lookupField(data, "descuento")),
		Abonado:    utils.ParseNum(lookupField(data, "abonado")),
		FechaAbono: lookupField(data, "fecha_abono"),
		TextoExtra: lookupField(data, "texto_extra"),
	}
}

// Mapping builds the token -> text table the renderer fills in.
func (d VoucherData) Mapping() map[string]string {
	t := pricing.Recompute(d.Subtotal, d.Descuento, d.Abonado)
	return map[string]string{
		TokenNombre:     d.Nombre,
		TokenFecha:      d.Fecha,
		TokenDirSalida:  d.DirSalida,
		TokenDirDestino: d.DirDestino,
		TokenHorIda:     d.HorIda,
		TokenHorRegreso: d.HorRegreso,
		TokenDuracion:   d.Duracion,
		TokenCapacidadu: d.Capacidadu,
		TokenSubtotal:   utils.FormatMoney(d.Subtotal),
		TokenDescuento:  utils.FormatMoney(d.Descuento),
		TokenTotal:      utils.FormatMoney(t.Total),
		TokenAbonado:    utils.FormatMoney(d.Abonado),
		TokenFechaAbono: d.FechaAbono,
		TokenLiquidar:   utils.FormatMoney(t.BalanceDue),
	}
}

func lookupField(data map[string]any, key string) string {
	for _, k := range []string{key, strings.ToLower(key), strings.ToUpper(key)} {
		v, ok := data[k]
		if !ok {
			continue
		}
		switch x := v.(type) {
		case nil:
			return ""
		case string:
			return x
		case float64:
			return strconv.FormatFloat(x, 'f', -1, 64)
		default:
			return fmt.Sprint(x)
		}
	}
	return ""
}

// VoucherService produces voucher PDFs for stored orders or raw payloads.
type VoucherService struct {
	Orders    OrderStore
	RequestID string
	Loader    func(ctx context.Context, id int64) (models.Order, error)
}

func (s VoucherService) ForOrder(ctx context.Context, id int64) ([]byte, string, error) {
	load := s.Loader
	if load == nil {
		load = s.Orders.Get
	}
	o, err := load(ctx, id)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "voucher", "generate", fmt.Sprintf("order_id=%d", id))

	d := VoucherDataFromOrder(o)
	pdf, err := RenderVoucher(d.Mapping(), d.TextoExtra)
	if err != nil {
		return nil, "", err
	}
	return pdf, fmt.Sprintf("ORDEN_%d_%s.pdf", o.ID, utils.SafeFilenamePart(o.Nombre)), nil
}

// FromData renders a voucher without touching storage.
func (s VoucherService) FromData(data map[string]any) ([]byte, string, error) {
	d := VoucherDataFromMap(data)
	utils.LogEvent(s.RequestID, "voucher", "generate_from_data", "nombre="+utils.Fallback(d.Nombre, "-"))
	pdf, err := RenderVoucher(d.Mapping(), d.TextoExtra)
	if err != nil {
		return nil, "", err
	}
	return pdf, "orden.pdf", nil
}

var voucherLayout = []struct {
	label string
	token string
}{
	{"Cliente", TokenNombre},
	{"Fecha", TokenFecha},
	{"Salida", TokenDirSalida},
	{"Destino", TokenDirDestino},
	{"Hora de ida", TokenHorIda},
	{"Hora de regreso", TokenHorRegreso},
	{"Duración (horas)", TokenDuracion},
	{"Unidad (pasajeros)", TokenCapacidadu},
}

var voucherAmounts = []struct {
	label string
	token string
}{
	{"Subtotal", TokenSubtotal},
	{"Descuento", TokenDescuento},
	{"Total", TokenTotal},
	{"Abonado", TokenAbonado},
	{"Fecha de abono", TokenFechaAbono},
	{"Por liquidar", TokenLiquidar},
}

// RenderVoucher lays out a filled mapping as a one page PDF, plus an extra
// page when extra text is present.
func RenderVoucher(mapping map[string]string, extra string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Orden de servicio", true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, tr("ORDEN DE SERVICIO"))
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 12)
	for _, row := range voucherLayout {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(55, 8, tr(row.label+":"), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 12)
		pdf.MultiCell(0, 8, tr(utils.Fallback(mapping[row.token], "-")), "", "L", false)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, tr("Resumen de pago"))
	pdf.Ln(10)
	for _, row := range voucherAmounts {
		pdf.SetFont("Helvetica", "", 12)
		pdf.CellFormat(55, 8, tr(row.label+":"), "B", 0, "L", false, 0, "")
		value := utils.Fallback(mapping[row.token], "-")
		if row.token != TokenFechaAbono {
			value = "$" + value
		}
		pdf.CellFormat(60, 8, tr(value), "B", 1, "R", false, 0, "")
	}

	if strings.TrimSpace(extra) != "" {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 14)
		pdf.Cell(0, 10, tr("Información adicional"))
		pdf.Ln(12)
		pdf.SetFont("Helvetica", "", 12)
		pdf.MultiCell(0, 7, tr(extra), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
