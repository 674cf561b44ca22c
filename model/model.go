package model

// 势阱参数
type Params struct {
	WidthX  float64 `json:"width_x"` // x 方向势阱宽度
	WidthY  float64 `json:"width_y"` // y 方向势阱宽度
	N       int     `json:"n"`       // 量子数
	Samples int     `json:"samples"` // 每个坐标轴的采样点数
	Levels  int     `json:"levels"`  // 等值线数量
}

// 三维视角，单位：度
type View struct {
	Azimuth   float64 `json:"azimuth"`
	Elevation float64 `json:"elevation"`
}

// 前后端通信消息结构
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

const (
	MsgStart   = "start"
	MsgStarted = "started"
	MsgView    = "view"
	MsgViewSet = "viewSet"
	MsgStop    = "stop"
	MsgStopped = "stopped"
	MsgError   = "error"
)

// 降采样后的场数据
type FieldData struct {
	Rows int         `json:"rows"`
	Cols int         `json:"cols"`
	Min  float64     `json:"min"`
	Max  float64     `json:"max"`
	Data [][]float64 `json:"data"`
}

// 等值线层级编码后的场数据
type EncodedField struct {
	Start int    `json:"start"`
	Count int    `json:"count"`
	Data  []int8 `json:"data"`
}

// 推送给前端的数据
type PushData struct {
	Params     Params       `json:"params"`
	View       View         `json:"view"`
	Step       int          `json:"step"`
	Psi        FieldData    `json:"psi"`
	Prob       FieldData    `json:"prob"`
	PsiLevels  EncodedField `json:"psi_levels"`
	ProbLevels EncodedField `json:"prob_levels"`
	Figures    []string     `json:"figures"`
}
