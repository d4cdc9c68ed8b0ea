package refdata

// VietQR 银行目录静态表
// 前端用 bin 选银行，落库同时存 bankCode(bin) 和 bankName

// Bank 银行条目
type Bank struct {
	Bin       string
	Code      string
	Name      string
	ShortName string
}

// Banks 常用银行，bin 为 NAPAS 标准编码
var Banks = []Bank{
	{Bin: "970405", Code: "VBA", Name: "Ngân hàng Nông nghiệp và Phát triển Nông thôn Việt Nam", ShortName: "Agribank"},
	{Bin: "970403", Code: "STB", Name: "Ngân hàng TMCP Sài Gòn Thương Tín", ShortName: "Sacombank"},
	{Bin: "970407", Code: "TCB", Name: "Ngân hàng TMCP Kỹ thương Việt Nam", ShortName: "Techcombank"},
	{Bin: "970415", Code: "ICB", Name: "Ngân hàng TMCP Công thương Việt Nam", ShortName: "VietinBank"},
	{Bin: "970416", Code: "ACB", Name: "Ngân hàng TMCP Á Châu", ShortName: "ACB"},
	{Bin: "970418", Code: "BIDV", Name: "Ngân hàng TMCP Đầu tư và Phát triển Việt Nam", ShortName: "BIDV"},
	{Bin: "970422", Code: "MB", Name: "Ngân hàng TMCP Quân đội", ShortName: "MBBank"},
	{Bin: "970423", Code: "TPB", Name: "Ngân hàng TMCP Tiên Phong", ShortName: "TPBank"},
	{Bin: "970426", Code: "MSB", Name: "Ngân hàng TMCP Hàng Hải", ShortName: "MSB"},
	{Bin: "970431", Code: "EIB", Name: "Ngân hàng TMCP Xuất Nhập khẩu Việt Nam", ShortName: "Eximbank"},
	{Bin: "970432", Code: "VPB", Name: "Ngân hàng TMCP Việt Nam Thịnh Vượng", ShortName: "VPBank"},
	{Bin: "970436", Code: "VCB", Name: "Ngân hàng TMCP Ngoại Thương Việt Nam", ShortName: "Vietcombank"},
	{Bin: "970437", Code: "HDB", Name: "Ngân hàng TMCP Phát triển TP. Hồ Chí Minh", ShortName: "HDBank"},
	{Bin: "970441", Code: "VIB", Name: "Ngân hàng TMCP Quốc tế Việt Nam", ShortName: "VIB"},
	{Bin: "970443", Code: "SHB", Name: "Ngân hàng TMCP Sài Gòn - Hà Nội", ShortName: "SHB"},
	{Bin: "970448", Code: "OCB", Name: "Ngân hàng TMCP Phương Đông", ShortName: "OCB"},
	{Bin: "970454", Code: "VCCB", Name: "Ngân hàng TMCP Bản Việt", ShortName: "BVBank"},
}

// FindBankByBin 按 bin 查银行，查不到返回 nil
func FindBankByBin(bin string) *Bank {
	for i := range Banks {
		if Banks[i].Bin == bin {
			return &Banks[i]
		}
	}
	return nil
}
