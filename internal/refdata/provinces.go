package refdata

// 行政区划静态表 (2025 年合并后的 34 省/市)
// 对应旧版前端整包加载的 donViHanhChinh34TinhThanh.json，
// 只保留地址组装需要的字段：编码、全名、下辖坊/社

// Ward 坊/社
type Ward struct {
	Code string
	Name string
}

// Province 省/直辖市
type Province struct {
	Code     string
	Name     string
	FullName string
	Wards    []Ward
}

// Provinces 34 省/市，按官方编码排序
var Provinces = []Province{
	{Code: "01", Name: "Hà Nội", FullName: "Thành phố Hà Nội", Wards: []Ward{
		{Code: "00004", Name: "Phường Ba Đình"},
		{Code: "00008", Name: "Phường Ngọc Hà"},
		{Code: "00070", Name: "Phường Hoàn Kiếm"},
		{Code: "00082", Name: "Phường Cửa Nam"},
		{Code: "00091", Name: "Phường Hồng Hà"},
	}},
	{Code: "04", Name: "Cao Bằng", FullName: "Tỉnh Cao Bằng"},
	{Code: "08", Name: "Tuyên Quang", FullName: "Tỉnh Tuyên Quang"},
	{Code: "11", Name: "Điện Biên", FullName: "Tỉnh Điện Biên"},
	{Code: "12", Name: "Lai Châu", FullName: "Tỉnh Lai Châu"},
	{Code: "14", Name: "Sơn La", FullName: "Tỉnh Sơn La"},
	{Code: "15", Name: "Lào Cai", FullName: "Tỉnh Lào Cai"},
	{Code: "19", Name: "Thái Nguyên", FullName: "Tỉnh Thái Nguyên"},
	{Code: "20", Name: "Lạng Sơn", FullName: "Tỉnh Lạng Sơn"},
	{Code: "22", Name: "Quảng Ninh", FullName: "Tỉnh Quảng Ninh"},
	{Code: "24", Name: "Bắc Ninh", FullName: "Tỉnh Bắc Ninh"},
	{Code: "25", Name: "Phú Thọ", FullName: "Tỉnh Phú Thọ"},
	{Code: "31", Name: "Hải Phòng", FullName: "Thành phố Hải Phòng"},
	{Code: "33", Name: "Hưng Yên", FullName: "Tỉnh Hưng Yên"},
	{Code: "37", Name: "Ninh Bình", FullName: "Tỉnh Ninh Bình"},
	{Code: "38", Name: "Thanh Hóa", FullName: "Tỉnh Thanh Hóa"},
	{Code: "40", Name: "Nghệ An", FullName: "Tỉnh Nghệ An"},
	{Code: "42", Name: "Hà Tĩnh", FullName: "Tỉnh Hà Tĩnh"},
	{Code: "44", Name: "Quảng Trị", FullName: "Tỉnh Quảng Trị"},
	{Code: "46", Name: "Huế", FullName: "Thành phố Huế"},
	{Code: "48", Name: "Đà Nẵng", FullName: "Thành phố Đà Nẵng"},
	{Code: "51", Name: "Quảng Ngãi", FullName: "Tỉnh Quảng Ngãi"},
	{Code: "52", Name: "Gia Lai", FullName: "Tỉnh Gia Lai"},
	{Code: "56", Name: "Khánh Hòa", FullName: "Tỉnh Khánh Hòa"},
	{Code: "66", Name: "Đắk Lắk", FullName: "Tỉnh Đắk Lắk"},
	{Code: "68", Name: "Lâm Đồng", FullName: "Tỉnh Lâm Đồng"},
	{Code: "75", Name: "Đồng Nai", FullName: "Tỉnh Đồng Nai"},
	{Code: "79", Name: "Hồ Chí Minh", FullName: "Thành phố Hồ Chí Minh", Wards: []Ward{
		{Code: "26734", Name: "Phường Sài Gòn"},
		{Code: "26740", Name: "Phường Tân Định"},
		{Code: "26743", Name: "Phường Bến Thành"},
		{Code: "26764", Name: "Phường Xuân Hòa"},
		{Code: "26770", Name: "Phường Nhiêu Lộc"},
	}},
	{Code: "80", Name: "Tây Ninh", FullName: "Tỉnh Tây Ninh"},
	{Code: "82", Name: "Đồng Tháp", FullName: "Tỉnh Đồng Tháp"},
	{Code: "86", Name: "Vĩnh Long", FullName: "Tỉnh Vĩnh Long"},
	{Code: "91", Name: "An Giang", FullName: "Tỉnh An Giang"},
	{Code: "92", Name: "Cần Thơ", FullName: "Thành phố Cần Thơ"},
	{Code: "96", Name: "Cà Mau", FullName: "Tỉnh Cà Mau"},
}

// FindProvince 按编码查省/市，查不到返回 nil
func FindProvince(code string) *Province {
	for i := range Provinces {
		if Provinces[i].Code == code {
			return &Provinces[i]
		}
	}
	return nil
}

// FindWard 在指定省下按编码查坊/社，查不到返回 nil
func FindWard(provinceCode, wardCode string) *Ward {
	p := FindProvince(provinceCode)
	if p == nil {
		return nil
	}
	for i := range p.Wards {
		if p.Wards[i].Code == wardCode {
			return &p.Wards[i]
		}
	}
	return nil
}
