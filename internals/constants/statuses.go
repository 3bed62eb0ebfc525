package constants

// =========================
// Room status
// =========================

type RoomStatus int

const (
	RoomVacant           RoomStatus = 1
	RoomOccupied         RoomStatus = 2
	RoomUnderMaintenance RoomStatus = 3
	RoomDisabled         RoomStatus = 4
)

var roomStatusText = map[RoomStatus]string{
	RoomVacant:           "空闲",
	RoomOccupied:         "已出租",
	RoomUnderMaintenance: "维修中",
	RoomDisabled:         "停用",
}

func (s RoomStatus) Valid() bool {
	_, ok := roomStatusText[s]
	return ok
}

func (s RoomStatus) Text() string {
	if t, ok := roomStatusText[s]; ok {
		return t
	}
	return "未知"
}

// =========================
// Payment status (Rental & RentalInfo)
// =========================

type PaymentStatus int

const (
	PaymentPaid   PaymentStatus = 1
	PaymentUnpaid PaymentStatus = 2
)

func (s PaymentStatus) Valid() bool {
	return s == PaymentPaid || s == PaymentUnpaid
}

func (s PaymentStatus) Text() string {
	switch s {
	case PaymentPaid:
		return "已缴费"
	case PaymentUnpaid:
		return "未缴费"
	default:
		return "未知"
	}
}

// =========================
// Contract status & utilities flag
// =========================

type ContractStatus int

const (
	ContractActive   ContractStatus = 1
	ContractInactive ContractStatus = 2
)

func (s ContractStatus) Valid() bool {
	return s == ContractActive || s == ContractInactive
}

func (s ContractStatus) Text() string {
	switch s {
	case ContractActive:
		return "有效"
	case ContractInactive:
		return "失效"
	default:
		return "未知"
	}
}

type UtilitiesIncluded int

const (
	UtilitiesIncludedYes UtilitiesIncluded = 1
	UtilitiesIncludedNo  UtilitiesIncluded = 2
)

func (u UtilitiesIncluded) Valid() bool {
	return u == UtilitiesIncludedYes || u == UtilitiesIncludedNo
}

func (u UtilitiesIncluded) Text() string {
	switch u {
	case UtilitiesIncludedYes:
		return "包含"
	case UtilitiesIncludedNo:
		return "不包含"
	default:
		return "未知"
	}
}

const (
	DefaultPaymentMethod    = "按月付款"
	DefaultContractDuration = 12
)
