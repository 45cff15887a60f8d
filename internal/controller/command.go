package controller

import "fmt"

// CommandKind enumerates every action the presentation layer can dispatch.
type CommandKind int

const (
	CommandLoad CommandKind = iota
	CommandSearch
	CommandToggleTag
	CommandClearFilters
	CommandOpenCreate
	CommandOpenEdit
	CommandCloseForm
	CommandAddFormTag
	CommandRemoveFormTag
	CommandSubmit
	CommandDelete
	CommandCopy
	CommandDismissNotification
)

var commandNames = map[CommandKind]string{
	CommandLoad:                "load",
	CommandSearch:              "search",
	CommandToggleTag:           "toggle_tag",
	CommandClearFilters:        "clear_filters",
	CommandOpenCreate:          "open_create",
	CommandOpenEdit:            "open_edit",
	CommandCloseForm:           "close_form",
	CommandAddFormTag:          "add_form_tag",
	CommandRemoveFormTag:       "remove_form_tag",
	CommandSubmit:              "submit",
	CommandDelete:              "delete",
	CommandCopy:                "copy",
	CommandDismissNotification: "dismiss_notification",
}

func (k CommandKind) String() string {
	if name, ok := commandNames[k]; ok {
		return name
	}
	return fmt.Sprintf("command(%d)", int(k))
}

// Command is one user action. Only the fields its Kind uses are read.
type Command struct {
	Kind  CommandKind
	Query string
	Tag   string
	ID    string
	Name  string
	Text  string
}

func Load() Command                    { return Command{Kind: CommandLoad} }
func Search(query string) Command      { return Command{Kind: CommandSearch, Query: query} }
func ToggleTag(tag string) Command     { return Command{Kind: CommandToggleTag, Tag: tag} }
func ClearFilters() Command            { return Command{Kind: CommandClearFilters} }
func OpenCreate() Command              { return Command{Kind: CommandOpenCreate} }
func OpenEdit(id string) Command       { return Command{Kind: CommandOpenEdit, ID: id} }
func CloseForm() Command               { return Command{Kind: CommandCloseForm} }
func AddFormTag(tag string) Command    { return Command{Kind: CommandAddFormTag, Tag: tag} }
func RemoveFormTag(tag string) Command { return Command{Kind: CommandRemoveFormTag, Tag: tag} }
func Submit(name, text string) Command { return Command{Kind: CommandSubmit, Name: name, Text: text} }
func Delete(id string) Command         { return Command{Kind: CommandDelete, ID: id} }
func Copy(id string) Command           { return Command{Kind: CommandCopy, ID: id} }
func DismissNotification() Command     { return Command{Kind: CommandDismissNotification} }
