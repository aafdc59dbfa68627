package model

// 前后端通信消息结构
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
	Kind    string `json:"kind,omitempty"` // 仅 error 消息使用
}

// 请求类型
const (
	TypeMaterials = "materials"
	TypeEnv       = "env"
	TypeSolve     = "solve"
	TypeCsv       = "csv"
)

// 响应类型
const (
	TypeEnvSet = "envSet"
	TypeSolved = "solved"
	TypeError  = "error"
)

// 错误类别
const (
	KindInvalidConfiguration  = "invalid_configuration"
	KindResourceLimitExceeded = "resource_limit_exceeded"
	KindComputationFault      = "computation_fault"
	KindBadRequest            = "bad_request"
)
