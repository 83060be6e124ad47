package entity

// Profile perfil do usuário exibido no cabeçalho. Se persiste como JSON bajo la clave userProfile.
type Profile struct {
	Nome     string `json:"nome"`
	Cargo    string `json:"cargo"`
	Email    string `json:"email,omitempty"`
	Telefone string `json:"telefone,omitempty"`
}

// DefaultProfile perfil usado cuando no hay nada guardado o el JSON está corrupto.
func DefaultProfile() Profile {
	return Profile{Nome: "João Silva", Cargo: "Administrador"}
}
