package model

// EndNodeID is the sentinel a dialogue option may reference instead of a
// real node id to terminate the conversation.
const EndNodeID = "END"

type Condition struct {
	Type     ConditionType `json:"type"`
	Target   string        `json:"target,omitempty"`
	Value    any           `json:"value,omitempty"`
	Operator string        `json:"operator"`
}

// Effect records are opaque to validation; the game runtime interprets them.
type Effect map[string]any

type DialogueOption struct {
	Text       string      `json:"text"`
	NextNodeID string      `json:"next_node_id"` // existing node id or EndNodeID
	Conditions []Condition `json:"conditions"`
	Effects    []Effect    `json:"effects"`
}

type DialogueNode struct {
	NodeID   string   `json:"node_id"`
	NodeType NodeType `json:"node_type"`

	NPCText string `json:"npc_text,omitempty"`
	NPCName string `json:"npc_name,omitempty"`
	Emotion string `json:"emotion,omitempty"`

	PlayerOptions []DialogueOption `json:"player_options"`

	NextNodeID      string `json:"next_node_id,omitempty"`
	TrueNextNodeID  string `json:"true_next_node_id,omitempty"`
	FalseNextNodeID string `json:"false_next_node_id,omitempty"`

	Conditions []Condition `json:"conditions"`
	Effects    []Effect    `json:"effects"`

	EndType string `json:"end_type,omitempty"`

	IsBranching bool `json:"is_branching"`
	CanRepeat   bool `json:"can_repeat"`
	Priority    int  `json:"priority"` // 1-10
}

// DialogueTree is the canonical validated NPC dialogue record. The node and
// option reference graph is well-formed (no dangling ids); cycles are legal
// and reachability from the start node is not required.
type DialogueTree struct {
	DialogueID     string `json:"dialogue_id"`
	NPCName        string `json:"npc_name"`
	NPCDescription string `json:"npc_description"`
	NPCRole        string `json:"npc_role"`

	Nodes       []DialogueNode `json:"nodes"`
	StartNodeID string         `json:"start_node_id"`

	IsQuestRelated bool   `json:"is_quest_related"`
	QuestID        string `json:"quest_id,omitempty"`
	Repeatable     bool   `json:"repeatable"`

	Version string `json:"version"`
	Author  string `json:"author,omitempty"`
}

func (d *DialogueTree) Kind() Kind   { return KindDialogue }
func (d *DialogueTree) Name() string { return d.NPCName }
