package dto

// ==================== 员工列表 ====================

// UserListReq 员工列表请求
type UserListReq struct {
	Page     int `form:"page,default=1"`
	PageSize int `form:"pageSize,default=10"`
}

// UserView 员工展示行
type UserView struct {
	UserID      int64  `json:"userId"`
	Username    string `json:"username"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Status      int    `json:"status"`
	StatusText  string `json:"statusText"`
	Role        int    `json:"role"`
	RoleName    string `json:"roleName"`
	Avatar      string `json:"avatar,omitempty"`
}

// UserListResp 员工列表响应
type UserListResp struct {
	Items      []UserView `json:"items"`
	TotalCount int        `json:"totalCount"`
	Page       int        `json:"page"`
	PageSize   int        `json:"pageSize"`
	TotalPages int        `json:"totalPages"`
	HasMore    bool       `json:"hasMore"`
}

// ==================== 创建/编辑员工 ====================

// UserCreateReq 创建员工请求
type UserCreateReq struct {
	Username    string `json:"username" binding:"required"`
	Password    string `json:"password" binding:"required"`
	FullName    string `json:"fullName" binding:"required"`
	Email       string `json:"email" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	Role        int    `json:"role" binding:"required"`
	Status      int    `json:"status"`
}

// UserUpdateReq 编辑员工请求，头像走 multipart 单独处理
type UserUpdateReq struct {
	FullName    string `form:"fullName"`
	Email       string `form:"email"`
	PhoneNumber string `form:"phoneNumber"`
	Role        int    `form:"role"`
	Status      *int   `form:"status"`
}
