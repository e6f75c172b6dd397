package update_room

// UpdateRoomRequest HTTP модель запроса на изменение комнаты.
// IsActive указатель, чтобы отличить явный false от отсутствия поля
type UpdateRoomRequest struct {
	IsActive *bool `json:"isActive"`
}
