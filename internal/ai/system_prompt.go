package ai

const insightsSystemPrompt = `You are an expert project management and productivity analyst.
You read task data from a Kanban board and write short, practical reports for the team.
Do not invent tasks, people or dates that are not in the data.`

// insightsPromptTemplate takes the indented JSON task summary as its only verb.
const insightsPromptTemplate = `Below is a summary of the tasks currently on our Kanban board.
Look for patterns, likely bottlenecks and areas where the team could improve.
Reply with a concise, actionable report of 3-5 bullet points with productivity insights and optimization suggestions.

Data:
%s

Format the answer as a plain text report, for example:
- **High-Priority Focus:** Several high-priority tasks are still in 'To Do'. Prioritize them to avoid delays.
- **Review Bottleneck:** Tasks are piling up in 'Review'. More reviewer time would help.
`
