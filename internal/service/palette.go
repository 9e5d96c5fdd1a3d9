package service

// ── 科目配色 ────────────────────────────────────────────────
//
// 职责：把任意科目名称确定性地映射到固定调色板中的一项，
// 交互视图、打印视图与 Excel 导出共用同一映射。
//
// 设计决策：
//   - int32 多项式哈希（h = h*31 + 字符），带符号回绕
//   - abs(h) mod 15 取下标；空科目约定取第 0 项
//   - 不做冲突规避：两个科目撞色是可接受的，不是缺陷
// ─────────────────────────────────────────────────────────────

// PaletteEntry 一组配色角色：卡片背景、正文、边框、姓名徽标，
// 外加 Excel 填充色（ARGB 十六进制，供 excelize 使用）。
type PaletteEntry struct {
	Name       string `json:"name"`
	Background string `json:"background"`
	Text       string `json:"text"`
	Border     string `json:"border"`
	Badge      string `json:"badge"`
	Fill       string `json:"-"`
}

// subjectPalette 固定有序调色板，共 15 项。
// 样式类名与前端约定（Tailwind 色阶），Fill 为对应浅色的 RGB 十六进制。
var subjectPalette = []PaletteEntry{
	{Name: "red", Background: "bg-red-100", Text: "text-red-800", Border: "border-red-300", Badge: "bg-red-200", Fill: "FEE2E2"},
	{Name: "orange", Background: "bg-orange-100", Text: "text-orange-800", Border: "border-orange-300", Badge: "bg-orange-200", Fill: "FFEDD5"},
	{Name: "amber", Background: "bg-amber-100", Text: "text-amber-800", Border: "border-amber-300", Badge: "bg-amber-200", Fill: "FEF3C7"},
	{Name: "yellow", Background: "bg-yellow-100", Text: "text-yellow-800", Border: "border-yellow-300", Badge: "bg-yellow-200", Fill: "FEF9C3"},
	{Name: "lime", Background: "bg-lime-100", Text: "text-lime-800", Border: "border-lime-300", Badge: "bg-lime-200", Fill: "ECFCCB"},
	{Name: "green", Background: "bg-green-100", Text: "text-green-800", Border: "border-green-300", Badge: "bg-green-200", Fill: "DCFCE7"},
	{Name: "emerald", Background: "bg-emerald-100", Text: "text-emerald-800", Border: "border-emerald-300", Badge: "bg-emerald-200", Fill: "D1FAE5"},
	{Name: "teal", Background: "bg-teal-100", Text: "text-teal-800", Border: "border-teal-300", Badge: "bg-teal-200", Fill: "CCFBF1"},
	{Name: "cyan", Background: "bg-cyan-100", Text: "text-cyan-800", Border: "border-cyan-300", Badge: "bg-cyan-200", Fill: "CFFAFE"},
	{Name: "sky", Background: "bg-sky-100", Text: "text-sky-800", Border: "border-sky-300", Badge: "bg-sky-200", Fill: "E0F2FE"},
	{Name: "blue", Background: "bg-blue-100", Text: "text-blue-800", Border: "border-blue-300", Badge: "bg-blue-200", Fill: "DBEAFE"},
	{Name: "indigo", Background: "bg-indigo-100", Text: "text-indigo-800", Border: "border-indigo-300", Badge: "bg-indigo-200", Fill: "E0E7FF"},
	{Name: "violet", Background: "bg-violet-100", Text: "text-violet-800", Border: "border-violet-300", Badge: "bg-violet-200", Fill: "EDE9FE"},
	{Name: "purple", Background: "bg-purple-100", Text: "text-purple-800", Border: "border-purple-300", Badge: "bg-purple-200", Fill: "F3E8FF"},
	{Name: "pink", Background: "bg-pink-100", Text: "text-pink-800", Border: "border-pink-300", Badge: "bg-pink-200", Fill: "FCE7F3"},
}

// ColorOf 根据科目名称返回调色板项。
// 同一科目在任意进程、任意时刻调用结果恒定。
func ColorOf(subject string) PaletteEntry {
	if subject == "" {
		return subjectPalette[0]
	}

	var h int32
	for _, r := range subject {
		h = h*31 + int32(r)
	}

	idx := int(h % int32(len(subjectPalette)))
	if idx < 0 {
		idx = -idx
	}
	return subjectPalette[idx]
}
