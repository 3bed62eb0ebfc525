// Package pdf mencetak kontrak sewa ke dokumen A4.
package pdf

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"time"

	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"rentbook_backend/internals/features/property/contracts/model"
	"rentbook_backend/internals/helpers/dbtime"
)

const (
	fontFamily   = "contract"
	fallbackFont = "Helvetica"
	margin       = 60.0
	emptyDate    = "____年____月____日"
)

// Lokasi font CJK umum; CONTRACT_FONT_PATH dicoba lebih dulu.
var systemFontPaths = []string{
	"/usr/share/fonts/truetype/droid/DroidSansFallbackFull.ttf",
	"/usr/share/fonts/truetype/arphic/uming.ttf",
	"/usr/share/fonts/truetype/wqy/wqy-microhei.ttf",
	"/System/Library/Fonts/Supplemental/Arial Unicode.ttf",
	"C:/Windows/Fonts/simhei.ttf",
	"C:/Windows/Fonts/simkai.ttf",
}

type Renderer struct {
	FontPath string
	Clock    dbtime.Clock
	Log      *zap.Logger
}

func NewRenderer(fontPath string, clock dbtime.Clock, log *zap.Logger) *Renderer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Renderer{FontPath: fontPath, Clock: clock, Log: log}
}

// FileName → 合同_{nomor}_{penyewa}.pdf
func FileName(c model.ContractModel) string {
	return fmt.Sprintf("合同_%s_%s.pdf", c.ContractNumber, c.TenantName)
}

// ContentDisposition: fallback ASCII + filename* (RFC 5987) untuk nama UTF-8.
func ContentDisposition(name string) string {
	return fmt.Sprintf(`attachment; filename="contract.pdf"; filename*=UTF-8''%s`, url.PathEscape(name))
}

func readable(path string) bool {
	if path == "" {
		return false
	}
	st, err := os.Stat(path)
	return err == nil && !st.IsDir()
}

// setupFont memasang font UTF-8 pertama yang bisa dibaca; gagal semua → Helvetica.
func (r *Renderer) setupFont(doc *fpdf.Fpdf) string {
	candidates := append([]string{r.FontPath}, systemFontPaths...)
	for _, p := range candidates {
		if !readable(p) {
			continue
		}
		doc.AddUTF8Font(fontFamily, "", p)
		if doc.Err() {
			r.Log.Warn("contract font rejected", zap.String("path", p), zap.Error(doc.Error()))
			doc.ClearError()
			continue
		}
		return fontFamily
	}
	r.Log.Warn("no CJK font found, falling back to core font")
	return fallbackFont
}

func longDate(d *datatypes.Date) string {
	if d == nil {
		return emptyDate
	}
	return time.Time(*d).Format("2006年01月02日")
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

type writer struct {
	doc  *fpdf.Fpdf
	font string
}

func (w writer) title(text string) {
	w.doc.SetFont(w.font, "", 18)
	w.doc.CellFormat(0, 28, text, "", 1, "C", false, 0, "")
	w.doc.Ln(6)
}

func (w writer) heading(text string) {
	w.doc.Ln(10)
	w.doc.SetFont(w.font, "", 12)
	w.doc.CellFormat(0, 18, text, "", 1, "L", false, 0, "")
	w.doc.Ln(2)
}

func (w writer) line(text string, size float64, align string) {
	w.doc.SetFont(w.font, "", size)
	w.doc.MultiCell(0, size+5, text, "", align, false)
}

// grid menggambar tabel 4 kolom label|nilai|label|nilai; label berlatar abu-abu.
func (w writer) grid(rows [][4]string) {
	pageW, _ := w.doc.GetPageSize()
	usable := pageW - 2*margin
	label := usable * 70 / 360
	value := usable * 110 / 360
	widths := [4]float64{label, value, label, value}

	w.doc.SetFont(w.font, "", 9)
	w.doc.SetFillColor(211, 211, 211)
	for _, row := range rows {
		for i, cell := range row {
			fill := i%2 == 0
			ln := 0
			if i == 3 {
				ln = 1
			}
			w.doc.CellFormat(widths[i], 20, cell, "1", ln, "L", fill, 0, "")
		}
	}
}

func (w writer) signatures(signDate string) {
	pageW, _ := w.doc.GetPageSize()
	col := (pageW - 2*margin) / 2
	rows := [][2]string{
		{"甲方（房东）", "乙方（租客）"},
		{"", ""},
		{"", ""},
		{"签名：______________", "签名：______________"},
		{"签署日期：" + signDate, "签署日期：" + signDate},
	}
	w.doc.SetFont(w.font, "", 10)
	for _, row := range rows {
		w.doc.CellFormat(col, 30, row[0], "1", 0, "C", false, 0, "")
		w.doc.CellFormat(col, 30, row[1], "1", 1, "C", false, 0, "")
	}
}

// Render menulis PDF kontrak ke out.
func (r *Renderer) Render(out io.Writer, c model.ContractModel) error {
	doc := fpdf.New("P", "pt", "A4", "")
	doc.SetMargins(margin, margin, margin)
	doc.SetAutoPageBreak(true, margin)
	doc.SetTitle("房屋租赁合同", true)
	doc.AddPage()

	w := writer{doc: doc, font: r.setupFont(doc)}

	w.title("房屋租赁合同")
	w.line("合同编号："+c.ContractNumber, 9, "L")
	doc.Ln(12)

	w.heading("一、合同基本信息")
	w.grid([][4]string{
		{"合同编号", c.ContractNumber, "房间号", c.RoomNumber},
		{"月租金", "¥" + c.MonthlyRent.StringFixed(2), "押金", "¥" + c.Deposit.StringFixed(2)},
		{"合同状态", c.Status.Text(), "付款方式", orDefault(c.PaymentMethod, "按月付款")},
	})

	w.heading("二、租客信息")
	w.grid([][4]string{
		{"租客姓名", c.TenantName, "联系电话", orDefault(c.TenantPhone, "未填写")},
		{"身份证号", orDefault(c.TenantIDCard, "未填写"), "", ""},
	})

	w.heading("三、房东信息")
	w.grid([][4]string{
		{"房东姓名", orDefault(c.LandlordName, "未填写"), "联系电话", orDefault(c.LandlordPhone, "未填写")},
	})

	duration := c.ContractDuration
	if duration == 0 {
		duration = 12
	}
	w.heading("四、合同期限")
	w.grid([][4]string{
		{"合同开始", longDate(c.ContractStartDate), "合同结束", longDate(c.ContractEndDate)},
		{"租期时长", fmt.Sprintf("%d个月", duration), "租金到期", longDate(c.RentDueDate)},
	})

	w.heading("五、费用信息")
	w.grid([][4]string{
		{"水电费", c.UtilitiesIncluded.Text(), "水费单价", "¥" + c.WaterRate.StringFixed(2) + "/吨"},
		{"电费单价", "¥" + c.ElectricityRate.StringFixed(2) + "/度", "", ""},
	})

	w.heading("六、合同条款")
	w.line("1. 基本条款：", 9, "L")
	w.line(orDefault(c.ContractTerms, "按照国家相关法律法规执行，双方应遵守合同约定。"), 9, "L")
	doc.Ln(6)
	w.line("2. 特殊约定：", 9, "L")
	w.line(orDefault(c.SpecialAgreement, "无特殊约定。"), 9, "L")
	doc.Ln(6)
	w.line("3. 备注说明：", 9, "L")
	w.line(orDefault(c.Remarks, "无备注。"), 9, "L")
	doc.Ln(20)

	var signed *datatypes.Date
	if !c.CreatedAt.IsZero() {
		d := dbtime.Today(dbtime.FixedClock{At: c.CreatedAt})
		signed = &d
	}
	w.signatures(longDate(signed))
	doc.Ln(15)

	w.line("本合同一式两份，甲乙双方各执一份，具有同等法律效力。", 8, "C")
	w.line("合同生成时间："+r.Clock.Now().Format("2006年01月02日 15:04:05"), 8, "C")

	if err := doc.Output(out); err != nil {
		return fmt.Errorf("render contract %d: %w", c.ID, err)
	}
	return nil
}
