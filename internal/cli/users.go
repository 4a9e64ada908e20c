package cli

import (
	"context"

	"github.com/GoShareDrive/GoShareDrive/internal/user"
)

func (m *Menu) userMenu(ctx context.Context) {
	for {
		m.printf("\n--- USER MANAGEMENT ---\n")
		m.printf("1. List Users\n")
		m.printf("2. Create User\n")
		m.printf("3. Update User\n")
		m.printf("4. Delete User\n")
		m.printf("5. Back to Main Menu\n")

		answer, err := m.prompt.Ask("Select action (1-5): ")
		if err != nil {
			return
		}

		switch answer {
		case "1":
			m.listUsers(ctx)
		case "2":
			m.createUser(ctx)
		case "3":
			m.updateUser(ctx)
		case "4":
			m.deleteUser(ctx)
		case "5":
			return
		default:
			m.printf("Unknown command.\n")
		}
	}
}

func (m *Menu) listUsers(ctx context.Context) {
	users, err := m.users.ListUsers(ctx)
	if err != nil {
		m.fail(err)
		return
	}
	m.printf("Total users: %d\n", len(users))
	for _, u := range users {
		m.printf("%s\n", u.Summary())
	}
}

func (m *Menu) createUser(ctx context.Context) {
	m.printf("\nRegister New User (Type 'cancel' to go back)\n")

	name, err := m.prompt.AskField("Name: ")
	if err != nil {
		m.fail(err)
		return
	}
	email, err := m.prompt.AskField("Email: ")
	if err != nil {
		m.fail(err)
		return
	}
	phone, err := m.prompt.AskField("Phone: ")
	if err != nil {
		m.fail(err)
		return
	}
	license, err := m.prompt.AskField("License number: ")
	if err != nil {
		m.fail(err)
		return
	}

	u, err := m.users.CreateUser(ctx, user.CreateUserInput{
		Name:    name,
		Email:   email,
		Phone:   phone,
		License: license,
	})
	if err != nil {
		m.fail(err)
		return
	}
	m.printf("[SUCCESS] User created. ID: %d\n", u.ID)
}

func (m *Menu) updateUser(ctx context.Context) {
	m.printf("\nUpdate User (Type 'cancel' to go back, Enter to skip field)\n")

	id, err := m.prompt.AskID("Enter User ID to update: ")
	if err != nil {
		m.fail(err)
		return
	}

	name, err := m.prompt.AskField("New Name: ")
	if err != nil {
		m.fail(err)
		return
	}
	email, err := m.prompt.AskField("New Email: ")
	if err != nil {
		m.fail(err)
		return
	}
	phone, err := m.prompt.AskField("New Phone: ")
	if err != nil {
		m.fail(err)
		return
	}
	license, err := m.prompt.AskField("New License: ")
	if err != nil {
		m.fail(err)
		return
	}

	u, err := m.users.UpdateUser(ctx, id, user.UpdateUserInput{
		Name:    name,
		Email:   email,
		Phone:   phone,
		License: license,
	})
	if err != nil {
		m.fail(err)
		return
	}
	m.printf("[SUCCESS] User %d updated.\n", u.ID)
}

func (m *Menu) deleteUser(ctx context.Context) {
	m.printf("\nDelete User\n")

	id, err := m.prompt.AskID("Enter User ID to DELETE: ")
	if err != nil {
		m.fail(err)
		return
	}

	confirm, err := m.prompt.Ask("Are you sure? (yes/no): ")
	if err != nil || !isYes(confirm) {
		m.printf("Operation cancelled.\n")
		return
	}

	if err := m.users.DeleteUser(ctx, id); err != nil {
		m.fail(err)
		return
	}
	m.printf("[SUCCESS] User %d deleted.\n", id)
}
