package models

// Account is the single local user record stored under the account key.
type Account struct {
	Name      string `json:"nombre"`
	Email     string `json:"correo"`
	Password  string `json:"password"`
	Birthdate string `json:"fecha,omitempty"`
}

// FirstName returns the first space-separated token of the account name.
func (account Account) FirstName() string {
	for index, char := range account.Name {
		if char == ' ' {
			return account.Name[:index]
		}
	}
	return account.Name
}
